/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ssargent/shellcraft/pkg/config"
	"github.com/ssargent/shellcraft/pkg/di"
	"github.com/ssargent/shellcraft/pkg/journal"
	"github.com/ssargent/shellcraft/pkg/logging"
)

var (
	container *di.Container
	settings  *config.Config
	logger    = zerolog.Nop()
)

// SetContainer injects the dependency container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shellcraft",
	Short: "ShellCraft - quest journal and soul file tools",
	Long: `ShellCraft keeps a player's progression in a soul file: level,
experience, quest slots and hit points.

Examples:
  shellcraft quest
  shellcraft show --output json
  shellcraft set --level 6 --hp 220`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}

		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		log, err := logging.New("shellcraft", cfg.Logging.Options(), os.Stderr)
		if err != nil {
			return err
		}

		settings = cfg
		logger = log
		logger.Debug().Str("soul", cfg.SoulPath).Str("sewer", cfg.SewerDir).Msg("configuration loaded")
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "path to config file (yaml or toml)")
	rootCmd.PersistentFlags().String("soul", "", "path to the soul file (overrides config)")
	rootCmd.PersistentFlags().String("sewer", "", "path to the sewer directory (overrides config)")
	rootCmd.PersistentFlags().String("quests", "", "path to a quest text file (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, off")
}

// loadSettings reads the config file, if present, and applies flag overrides
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	if configPath != "" && config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"soul", &cfg.SoulPath},
		{"sewer", &cfg.SewerDir},
		{"quests", &cfg.QuestFile},
		{"log-level", &cfg.Logging.Level},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.target, _ = cmd.Flags().GetString(o.flag)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newJournal wires a journal service from the current settings
func newJournal() (*journal.Service, error) {
	catalog, err := container.Catalog(settings.QuestFile)
	if err != nil {
		return nil, err
	}

	return journal.NewService(
		container.Repository(settings.SoulPath),
		catalog,
		container.Tracker(settings.SewerDir),
		logger,
	), nil
}
