// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "randstr",
	Short: "randstr generates cryptographically secure random strings",
	Long: `randstr generates cryptographically secure random strings with
configurable character sets, optionally copies the result to the clipboard,
hashes it with Argon2id, or renders it into a code-generation template.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
