package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randstr-cli/randstr/internal/config"
	"github.com/randstr-cli/randstr/internal/hash"
	"github.com/randstr-cli/randstr/internal/logger"
)

func init() { //nolint: gochecknoinits
	hashCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(hashCmd)
}

var hashCmd = &cobra.Command{
	Use:   "hash [password]",
	Short: "Hash a password with Argon2id",
	Long: `Hash a user-supplied password with Argon2id. The password is taken
from the first argument, or read from stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		var err error

		if cfg, err = config.ReadConfig(configPath); err != nil {
			return err
		}

		return logger.Init(cfg.Log)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var plain string

		if len(args) == 1 {
			plain = args[0]
		} else {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if scanner.Scan() {
				plain = scanner.Text()
			}

			if err := scanner.Err(); err != nil {
				return err //nolint: wrapcheck
			}

			plain = strings.TrimRight(plain, "\r\n")
		}

		encoded, err := hash.Password(plain)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), encoded)

		return nil
	},
}
