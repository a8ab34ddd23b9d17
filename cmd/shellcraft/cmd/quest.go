package cmd

import (
	"github.com/spf13/cobra"
)

// questCmd represents the quest command
var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Show the quest journal and accept new quests",
	Long: `Show active quests with their progress. If a quest slot is free,
the next quest available at your level is offered and accepted.

Example:
  shellcraft quest`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newJournal()
		if err != nil {
			return err
		}
		return svc.Run(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(questCmd)
}
