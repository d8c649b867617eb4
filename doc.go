// Package main provides the entry point for the randstr command-line tool.
// It generates cryptographically secure random strings with configurable
// character sets and hands the result to optional collaborators: the system
// clipboard, an Argon2id password hasher, and a code-generation template
// renderer.
package main
