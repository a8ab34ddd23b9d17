// Package journal implements the quest journal: it shows active quests with
// their progress and offers the next quest the player qualifies for.
package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ssargent/shellcraft/pkg/progress"
	"github.com/ssargent/shellcraft/pkg/quest"
	"github.com/ssargent/shellcraft/pkg/soul"
)

// ProgressChecker reports how far along a quest is
type ProgressChecker interface {
	Check(q *quest.Quest) (progress.Status, error)
}

// Service drives the journal and quest offer flow
type Service struct {
	repo    Repository
	catalog quest.Catalog
	tracker ProgressChecker
	logger  zerolog.Logger
}

// NewService creates a journal service
func NewService(repo Repository, catalog quest.Catalog, tracker ProgressChecker, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		tracker: tracker,
		logger:  logger,
	}
}

// NextOffer returns the lowest numbered quest the record qualifies for and
// does not already have active. Nothing is offered when every unlocked slot is taken.
func NextOffer(r *soul.Record, catalog quest.Catalog) (*quest.Quest, bool) {
	if len(r.ActiveQuests()) >= r.UnlockedSlots() {
		return nil, false
	}

	for _, id := range catalog.IDs() {
		q, _ := catalog.Get(id)
		if q.MinLevel <= r.Level && !r.HasQuest(id) {
			return q, true
		}
	}
	return nil, false
}

// Run prints the journal to w and, if a slot is free, offers and accepts the
// next available quest. Load, accept and save failures are returned.
func (s *Service) Run(w io.Writer) error {
	r, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("cannot read your soul: %w", err)
	}
	s.logger.Debug().
		Uint32("level", r.Level).
		Uint64("xp", r.Experience).
		Uint32("hp", r.HitPoints).
		Msg("loaded soul")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Quest Journal ===")
	fmt.Fprintln(w)

	active := r.ActiveQuests()
	if len(active) == 0 {
		fmt.Fprintln(w, "No active quests.")
	} else {
		for _, id := range active {
			s.showQuest(w, id)
		}
	}

	fmt.Fprintln(w)

	unlocked := r.UnlockedSlots()
	used := len(active)

	if used < unlocked {
		free := unlocked - used
		plural := "s"
		if free == 1 {
			plural = ""
		}
		fmt.Fprintf(w, "You have %d empty quest slot%s.\n", free, plural)
		fmt.Fprintln(w)

		if q, ok := NextOffer(r, s.catalog); ok {
			if err := s.offer(w, r, q); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(w, "No new quests available at your level.")
		}
	} else {
		fmt.Fprintf(w, "All quest slots full (%d/%d).\n", used, unlocked)
		fmt.Fprintln(w, "Complete a quest to free up a slot.")
	}

	fmt.Fprintln(w)
	return nil
}

func (s *Service) showQuest(w io.Writer, id uint32) {
	q, ok := s.catalog.Get(id)
	if !ok {
		fmt.Fprintf(w, "Quest %d: Unknown quest\n\n", id)
		return
	}

	fmt.Fprintf(w, "Quest: %s\n", q.Name)
	writeIndented(w, q.JournalDescription)
	fmt.Fprintln(w)

	status, err := s.tracker.Check(q)
	if err != nil {
		s.logger.Warn().Err(err).Uint32("quest_id", id).Msg("progress check failed")
	}

	if status.Message != "" {
		fmt.Fprintf(w, "  %s\n", status.Message)
	}
	if q.JournalObjective != "" {
		fmt.Fprintf(w, "  Objective: %s\n", q.JournalObjective)
	}
	if q.JournalReward != "" {
		fmt.Fprintf(w, "  Reward: %s\n", q.JournalReward)
	}

	if status.Complete {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  *** QUEST COMPLETE! ***")
		if q.CompletionMessage != "" {
			fmt.Fprintf(w, "  %s\n", q.CompletionMessage)
		}
	}

	fmt.Fprintln(w)
}

// offer shows the offer screen, then adds the quest and saves the record
func (s *Service) offer(w io.Writer, r *soul.Record, q *quest.Quest) error {
	fmt.Fprintln(w, "=== New Quest Available ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, q.OfferTitle)
	fmt.Fprintln(w)
	for _, line := range strings.Split(q.OfferNarrative, "\n") {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Objective: %s\n", q.OfferObjective)
	fmt.Fprintf(w, "Reward: %s\n", q.OfferReward)
	fmt.Fprintln(w)

	slot, err := r.AddQuest(q.ID)
	if err != nil {
		return fmt.Errorf("error accepting quest: %w", err)
	}

	if err := s.repo.Save(r); err != nil {
		return fmt.Errorf("error saving soul: %w", err)
	}

	s.logger.Info().Uint32("quest_id", q.ID).Int("slot", slot).Msg("quest accepted")

	fmt.Fprintln(w, "Quest accepted!")
	fmt.Fprintln(w, "Quest added to your journal.")
	return nil
}

// Abandon removes a quest from every slot and saves the record.
// It reports false without saving when the quest was not present.
func (s *Service) Abandon(id uint32) (bool, error) {
	r, err := s.repo.Load()
	if err != nil {
		return false, fmt.Errorf("cannot read your soul: %w", err)
	}

	if !r.RemoveQuest(id) {
		return false, nil
	}

	if err := s.repo.Save(r); err != nil {
		return false, fmt.Errorf("error saving soul: %w", err)
	}

	s.logger.Info().Uint32("quest_id", id).Msg("quest abandoned")
	return true, nil
}

func writeIndented(w io.Writer, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
