// Package randstr generates cryptographically secure random strings from a
// configurable character pool. Every character is drawn independently and
// uniformly from the pool using the operating system CSPRNG; the randomness
// capability is injectable so the selection logic can be tested with a
// deterministic source.
package randstr
