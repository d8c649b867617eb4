package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/randstr-cli/randstr/internal/clipboard"
	"github.com/randstr-cli/randstr/internal/config"
	"github.com/randstr-cli/randstr/internal/hash"
	"github.com/randstr-cli/randstr/internal/logger"
	"github.com/randstr-cli/randstr/internal/randstr"
	"github.com/randstr-cli/randstr/internal/render"
)

func init() { //nolint: gochecknoinits
	generateCmd.Flags().IntVarP(&length, "length", "l", randstr.DefaultLen, "Length of the random string")

	generateCmd.Flags().StringVarP(
		&charsetName,
		"charset",
		"c",
		randstr.CharsetAlphanumeric,
		"Character set to use: "+strings.Join(randstr.Charsets(), ", "),
	)

	generateCmd.Flags().StringVar(
		&customChars,
		"custom-chars",
		"",
		"Custom character set to use when --charset is set to 'custom'",
	)

	generateCmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the result to the clipboard")

	generateCmd.Flags().StringVar(
		&templatePath,
		"template",
		"",
		"Path to a template file rendered with the generated string as {{.RandomString}}",
	)

	generateCmd.Flags().BoolVar(&hashOutput, "hash", false, "Hash the generated string with Argon2id")

	generateCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(generateCmd)
}

var (
	cfg config.Config

	length       int
	charsetName  string
	customChars  string
	copyOutput   bool
	templatePath string
	hashOutput   bool
	configPath   string

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a cryptographically secure random string",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			// config supplies defaults for flags the user did not set
			if !cmd.Flags().Changed("length") {
				length = cfg.Generate.Length
			}

			if !cmd.Flags().Changed("charset") {
				charsetName = cfg.Generate.Charset
			}

			if !cmd.Flags().Changed("custom-chars") {
				customChars = cfg.Generate.CustomChars
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
)

// runGenerate resolves the pool, invokes the generator once and forwards the
// result to the requested collaborators. The clipboard is the only
// collaborator whose failure does not fail the run.
func runGenerate(cmd *cobra.Command) error {
	pool, err := randstr.ResolveCharset(charsetName, customChars)
	if err != nil {
		return err
	}

	value, err := randstr.Generate(length, pool)
	if err != nil {
		return err
	}

	log.Debug().Int("length", length).Str("charset", charsetName).Msg("generated random string")

	output := value

	switch {
	case hashOutput:
		if output, err = hash.Password(value); err != nil {
			return err
		}
	case templatePath != "":
		if output, err = render.File(templatePath, render.Context{RandomString: value}); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)

	if copyOutput {
		if err := clipboard.Copy(output); err != nil {
			// non-fatal: the value was already printed
			log.Warn().Err(err).Msg("unable to copy to clipboard, ensure xclip or xsel is installed")
		} else {
			log.Info().Msg("result copied to clipboard")
		}
	}

	return nil
}
