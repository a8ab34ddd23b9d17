package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ssargent/shellcraft/pkg/quest"
	"github.com/ssargent/shellcraft/pkg/soul"
)

// soulView is the display form of a soul record
type soulView struct {
	Level         uint32                  `json:"level"`
	Experience    uint64                  `json:"experience"`
	NextLevelXP   uint64                  `json:"next_level_xp"`
	HitPoints     uint32                  `json:"hit_points"`
	MaxHitPoints  uint32                  `json:"max_hit_points"`
	UnlockedSlots int                     `json:"unlocked_slots"`
	Slots         [soul.QuestSlots]uint32 `json:"slots"`
	ActiveQuests  []uint32                `json:"active_quests"`
}

func newSoulView(r *soul.Record) soulView {
	return soulView{
		Level:         r.Level,
		Experience:    r.Experience,
		NextLevelXP:   r.ExperienceForNextLevel(),
		HitPoints:     r.HitPoints,
		MaxHitPoints:  r.MaxHitPoints(),
		UnlockedSlots: r.UnlockedSlots(),
		Slots:         r.Quests,
		ActiveQuests:  r.ActiveQuests(),
	}
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the soul file",
	Long: `Print level, experience, hit points and quest slots.

Examples:
  shellcraft show
  shellcraft show --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")

		r, err := container.Repository(settings.SoulPath).Load()
		if err != nil {
			return fmt.Errorf("cannot read your soul: %w", err)
		}

		catalog, err := container.Catalog(settings.QuestFile)
		if err != nil {
			return err
		}

		return outputSoul(cmd.OutOrStdout(), r, catalog, format)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("output", "o", "table", "output format (table or json)")
}

// outputSoul displays a record in the requested format
func outputSoul(w io.Writer, r *soul.Record, catalog quest.Catalog, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(newSoulView(r))
	case "table", "":
		return outputSoulTable(w, r, catalog)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func outputSoulTable(w io.Writer, r *soul.Record, catalog quest.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Level:\t%d/%d\n", r.Level, soul.MaxLevel)
	fmt.Fprintf(tw, "XP:\t%d (next level at %d)\n", r.Experience, r.ExperienceForNextLevel())
	fmt.Fprintf(tw, "HP:\t%d/%d\n", r.HitPoints, r.MaxHitPoints())
	fmt.Fprintf(tw, "Quest slots:\t%d/%d unlocked\n", r.UnlockedSlots(), soul.QuestSlots)

	for i, id := range r.Quests {
		state := "empty"
		switch {
		case !r.IsSlotUnlocked(i):
			state = "locked"
		case id != 0:
			state = fmt.Sprintf("%d %s", id, questName(catalog, id))
		}
		fmt.Fprintf(tw, "  Slot %d:\t%s\n", i, state)
	}

	return tw.Flush()
}

func questName(catalog quest.Catalog, id uint32) string {
	if q, ok := catalog.Get(id); ok {
		return q.Name
	}
	return "(unknown quest)"
}
