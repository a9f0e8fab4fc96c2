// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	devMode    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "GoPortfolio-Admin serves a personal portfolio site with an admin panel",
	Long: `GoPortfolio-Admin serves a personal portfolio website with projects, bio and a
contact form, and an admin panel to manage projects, messages and site settings.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Path to the configuration directory")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the logger. The given
// overrides run after the command line flags were applied.
func loadConfig(overrides ...func(*config.Config)) error {
	var err error

	cfg, err = config.ReadConfig(configPath, append([]func(*config.Config){applyFlags}, overrides...)...)
	if err != nil {
		return err
	}

	return logger.Init(cfg.Log)
}

// applyFlags lets command line flags win over file and environment.
func applyFlags(c *config.Config) {
	if devMode {
		c.DevMode = true
	}
}
