package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
)

var dumpJSON bool

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print the configuration as JSON")

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration with secrets redacted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.ReadConfig(configPath, applyFlags, config.WithoutTokenSecret)
		if err != nil {
			return err
		}

		dump := config.DumpConfig
		if dumpJSON {
			dump = config.DumpConfigJSON
		}

		out, err := dump(&c)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err
	},
}
