package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// abandonCmd represents the abandon command
var abandonCmd = &cobra.Command{
	Use:   "abandon <quest-id>",
	Short: "Drop an active quest",
	Long: `Remove a quest from every slot of the soul file.

Example:
  shellcraft abandon 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseQuestID(args[0])
		if err != nil {
			return err
		}

		svc, err := newJournal()
		if err != nil {
			return err
		}

		removed, err := svc.Abandon(id)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("quest %d is not in your journal", id)
		}

		cmd.Printf("Quest %d abandoned.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(abandonCmd)
}

func parseQuestID(raw string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid quest id %q", raw)
	}
	return uint32(id), nil
}
