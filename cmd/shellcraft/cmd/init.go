/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/shellcraft/pkg/journal"
	"github.com/ssargent/shellcraft/pkg/soul"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a fresh soul file",
	Long: `Create a level 0 soul file at full health with no quests.

An existing soul file is left alone unless --force is given.

Examples:
  shellcraft init
  shellcraft init --soul ./soul.dat --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		created, err := initializeSoul(settings.SoulPath, container.Repository(settings.SoulPath), force)
		if err != nil {
			return err
		}
		if !created {
			cmd.Printf("Soul already exists at %s. Use --force to start over.\n", settings.SoulPath)
			return nil
		}

		logger.Info().Str("soul", settings.SoulPath).Msg("soul created")
		cmd.Printf("A new soul stirs at %s.\n", settings.SoulPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing soul file")
}

// initializeSoul writes a fresh record unless one already exists at path
func initializeSoul(path string, repo journal.Repository, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}

	if err := repo.Save(soul.New()); err != nil {
		return false, fmt.Errorf("error saving soul: %w", err)
	}
	return true, nil
}
