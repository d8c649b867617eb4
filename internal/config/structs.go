package config

import (
	"github.com/randstr-cli/randstr/internal/logger"
	"github.com/randstr-cli/randstr/internal/randstr"
)

// Generate holds the generation defaults applied when the matching flag is
// not set on the command line.
type Generate struct {
	// Length of the generated string.
	Length int `toml:"length" validate:"gt=0"`
	// Charset selector, one of the named character sets.
	Charset string `toml:"charset" validate:"oneof=alphanumeric alphanumeric_symbols digits letters symbols custom"`
	// CustomChars used when Charset is custom. Passed through verbatim,
	// duplicates included.
	CustomChars string `toml:"customChars"`
}

// Config overall data structure.
type Config struct {
	Generate Generate   `toml:"generate"`
	Log      logger.Log `toml:"log"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() Config {
	return Config{
		Generate: Generate{
			Length:  randstr.DefaultLen,
			Charset: randstr.CharsetAlphanumeric,
		},
		Log: logger.Log{
			LogLevel: "info",
			AppName:  "randstr",
			Console: logger.Console{
				Enabled:          true,
				UseConsoleWriter: true,
			},
		},
	}
}
