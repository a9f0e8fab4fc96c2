package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/daemon"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account, sample projects and default settings",
	Long: `Seed fills an empty installation. The admin account is created when no user
exists, sample projects when no project exists, and default settings are
inserted without overwriting stored values.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// seeding never signs tokens
		return loadConfig(config.WithoutTokenSecret)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		gdb, err := db.Open(&cfg)
		if err != nil {
			return err
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}

		defer sqlDB.Close() //nolint:errcheck

		if err = daemon.Seed(&cfg, gdb); err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "database seeded, admin user: %s\n", cfg.Seed.AdminUsername)

		return err
	},
}
