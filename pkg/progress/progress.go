// Package progress inspects the game world to report how far along a quest is.
package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/ssargent/shellcraft/pkg/quest"
)

const (
	// QuestSewerCleanse is completed by deleting every rat in the sewer
	QuestSewerCleanse uint32 = 1

	ratSuffix   = ".rat"
	countMarker = "{count}"
)

// Status is the outcome of a progress check
type Status struct {
	Known    bool   // false when the quest has no progress probe
	Complete bool
	Message  string // empty when there is nothing to report
}

// Tracker checks quest progress against the filesystem
type Tracker struct {
	SewerDir string
}

// NewTracker creates a tracker rooted at the given sewer directory
func NewTracker(sewerDir string) *Tracker {
	return &Tracker{SewerDir: sewerDir}
}

// Check reports progress for q. Quests without a probe are never complete.
func (t *Tracker) Check(q *quest.Quest) (Status, error) {
	switch q.ID {
	case QuestSewerCleanse:
		rats, err := t.CountRats()
		if err != nil {
			return Status{}, err
		}
		return Status{
			Known:    true,
			Complete: rats == 0,
			Message:  formatProgress(q.ProgressFormat, rats),
		}, nil
	default:
		return Status{}, nil
	}
}

// CountRats returns the number of *.rat entries in the sewer.
// A missing sewer has no rats.
func (t *Tracker) CountRats() (int, error) {
	entries, err := os.ReadDir(t.SewerDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read sewer: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ratSuffix) {
			count++
		}
	}
	return count, nil
}

func formatProgress(format string, count int) string {
	if format == "" {
		return fmt.Sprintf("Progress: %d rats remaining", count)
	}
	return strings.ReplaceAll(format, countMarker, strconv.Itoa(count))
}
