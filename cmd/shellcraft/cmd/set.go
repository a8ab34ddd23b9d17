package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/shellcraft/pkg/journal"
	"github.com/ssargent/shellcraft/pkg/soul"
)

// fieldChanges holds the fields requested by the set command; nil means unchanged
type fieldChanges struct {
	Level      *uint32
	Experience *uint64
	HitPoints  *uint32
	FullHeal   bool
}

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set level, experience or hit points",
	Long: `Assign soul fields directly. The record is validated before it is
saved, so hit points above the level's maximum are rejected.

Examples:
  shellcraft set --level 6
  shellcraft set --level 6 --full-heal
  shellcraft set --xp 64000 --hp 150`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var changes fieldChanges
		if cmd.Flags().Changed("level") {
			v, _ := cmd.Flags().GetUint32("level")
			changes.Level = &v
		}
		if cmd.Flags().Changed("xp") {
			v, _ := cmd.Flags().GetUint64("xp")
			changes.Experience = &v
		}
		if cmd.Flags().Changed("hp") {
			v, _ := cmd.Flags().GetUint32("hp")
			changes.HitPoints = &v
		}
		changes.FullHeal, _ = cmd.Flags().GetBool("full-heal")

		r, err := applyChanges(container.Repository(settings.SoulPath), changes)
		if err != nil {
			return err
		}

		logger.Info().Uint32("level", r.Level).Uint64("xp", r.Experience).Uint32("hp", r.HitPoints).Msg("soul updated")
		cmd.Printf("Level %d, XP %d, HP %d/%d\n", r.Level, r.Experience, r.HitPoints, r.MaxHitPoints())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().Uint32("level", 0, "player level (0-42)")
	setCmd.Flags().Uint64("xp", 0, "experience points")
	setCmd.Flags().Uint32("hp", 0, "hit points")
	setCmd.Flags().Bool("full-heal", false, "set hit points to the maximum for the resulting level")
	setCmd.MarkFlagsMutuallyExclusive("hp", "full-heal")
}

// applyChanges loads the record, assigns the requested fields and saves it
func applyChanges(repo journal.Repository, changes fieldChanges) (*soul.Record, error) {
	r, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot read your soul: %w", err)
	}

	if changes.Level != nil {
		r.Level = *changes.Level
	}
	if changes.Experience != nil {
		r.Experience = *changes.Experience
	}
	if changes.HitPoints != nil {
		r.HitPoints = *changes.HitPoints
	}
	if changes.FullHeal {
		r.HitPoints = r.MaxHitPoints()
	}

	if err := repo.Save(r); err != nil {
		return nil, fmt.Errorf("error saving soul: %w", err)
	}
	return r, nil
}
