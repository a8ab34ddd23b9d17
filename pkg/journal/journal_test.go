package journal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/ssargent/shellcraft/pkg/progress"
	"github.com/ssargent/shellcraft/pkg/quest"
	"github.com/ssargent/shellcraft/pkg/soul"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	record  *soul.Record
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryRepository) Load() (*soul.Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	r := *m.record
	return &r, nil
}

func (m *memoryRepository) Save(r *soul.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if err := r.Validate(); err != nil {
		return err
	}
	saved := *r
	m.record = &saved
	m.saves++
	return nil
}

type fixedProgress struct {
	status progress.Status
	err    error
}

func (f fixedProgress) Check(*quest.Quest) (progress.Status, error) {
	return f.status, f.err
}

func newService(repo Repository, tracker ProgressChecker) *Service {
	return NewService(repo, quest.Default(), tracker, zerolog.Nop())
}

func TestNextOffer(t *testing.T) {
	catalog := quest.Default()

	testCases := []struct {
		name   string
		record soul.Record
		wantID uint32
		wantOK bool
	}{
		{"fresh record gets first quest", soul.Record{}, 1, true},
		{"slot full", soul.Record{Quests: [soul.QuestSlots]uint32{1}}, 0, false},
		{"level 6 gets quest 2", soul.Record{Level: 6, Quests: [soul.QuestSlots]uint32{1}}, 2, true},
		{"quest in locked slot does not count", soul.Record{Quests: [soul.QuestSlots]uint32{0, 1}}, 1, true},
		{"level 12 skips active quests", soul.Record{Level: 12, Quests: [soul.QuestSlots]uint32{1, 2}}, 3, true},
		{"foreign quest blocks slot", soul.Record{Quests: [soul.QuestSlots]uint32{99}}, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, ok := NextOffer(&tc.record, catalog)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.wantID, q.ID)
			}
		})
	}

	t.Run("nothing at level", func(t *testing.T) {
		small := quest.Catalog{1: {ID: 1}, 8: {ID: 8, MinLevel: 30}}
		r := &soul.Record{Level: 6, Quests: [soul.QuestSlots]uint32{1}}
		_, ok := NextOffer(r, small)
		assert.False(t, ok)
	})
}

func TestRun_OffersFirstQuest(t *testing.T) {
	repo := &memoryRepository{record: soul.New()}
	var out bytes.Buffer

	err := newService(repo, fixedProgress{}).Run(&out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "=== Quest Journal ===")
	assert.Contains(t, text, "No active quests.")
	assert.Contains(t, text, "You have 1 empty quest slot.")
	assert.Contains(t, text, "=== New Quest Available ===")
	assert.Contains(t, text, "Objective: Eliminate all rats in /sewer")
	assert.Contains(t, text, "Quest added to your journal.")

	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, []uint32{1}, repo.record.ActiveQuests())
}

func TestRun_SlotsFull(t *testing.T) {
	r := soul.New()
	r.Quests[0] = 1
	repo := &memoryRepository{record: r}
	var out bytes.Buffer

	tracker := fixedProgress{status: progress.Status{Known: true, Message: "Progress: 3 rats remaining"}}
	err := newService(repo, tracker).Run(&out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Quest: The Sewer Cleanse")
	assert.Contains(t, text, "  Progress: 3 rats remaining")
	assert.Contains(t, text, "  Objective: Remove every *.rat file in /sewer")
	assert.Contains(t, text, "All quest slots full (1/1).")
	assert.NotContains(t, text, "QUEST COMPLETE")
	assert.Zero(t, repo.saves)
}

func TestRun_CompletedQuest(t *testing.T) {
	r := soul.New()
	r.Quests[0] = 1
	repo := &memoryRepository{record: r}
	var out bytes.Buffer

	tracker := fixedProgress{status: progress.Status{Known: true, Complete: true}}
	require.NoError(t, newService(repo, tracker).Run(&out))

	assert.Contains(t, out.String(), "*** QUEST COMPLETE! ***")
	assert.Contains(t, out.String(), "The sewer is quiet again.")
}

func TestRun_ProgressErrorIsNotFatal(t *testing.T) {
	r := soul.New()
	r.Quests[0] = 1
	repo := &memoryRepository{record: r}
	var out bytes.Buffer

	tracker := fixedProgress{err: errors.New("permission denied")}
	require.NoError(t, newService(repo, tracker).Run(&out))
	assert.Contains(t, out.String(), "Quest: The Sewer Cleanse")
}

func TestRun_UnknownQuestAndNoOffer(t *testing.T) {
	r := &soul.Record{Level: 6, HitPoints: 10}
	r.Quests[0] = 99
	repo := &memoryRepository{record: r}
	var out bytes.Buffer

	svc := NewService(repo, quest.Catalog{}, fixedProgress{}, zerolog.Nop())
	require.NoError(t, svc.Run(&out))

	assert.Contains(t, out.String(), "Quest 99: Unknown quest")
	assert.Contains(t, out.String(), "No new quests available at your level.")
	assert.Zero(t, repo.saves)
}

func TestRun_Failures(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		repo := &memoryRepository{loadErr: &soul.TooSmallError{Size: 3}}
		err := newService(repo, fixedProgress{}).Run(&bytes.Buffer{})

		assert.ErrorIs(t, err, soul.ErrTooSmall)
		assert.Contains(t, err.Error(), "cannot read your soul")
	})

	t.Run("save", func(t *testing.T) {
		saveErr := &soul.IOError{Op: "rename", Err: os.ErrPermission}
		repo := &memoryRepository{record: soul.New(), saveErr: saveErr}
		var out bytes.Buffer

		err := newService(repo, fixedProgress{}).Run(&out)
		assert.ErrorIs(t, err, os.ErrPermission)
		assert.Contains(t, err.Error(), "error saving soul")
		assert.NotContains(t, out.String(), "Quest accepted!")
	})

	t.Run("invalid record cannot be saved", func(t *testing.T) {
		repo := &memoryRepository{record: &soul.Record{HitPoints: 500}}

		err := newService(repo, fixedProgress{}).Run(&bytes.Buffer{})
		assert.ErrorIs(t, err, soul.ErrInvalidHitPoints)
	})
}

func TestAbandon(t *testing.T) {
	r := soul.New()
	r.Quests[0] = 1
	r.Quests[5] = 1
	repo := &memoryRepository{record: r}
	svc := newService(repo, fixedProgress{})

	removed, err := svc.Abandon(1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, [soul.QuestSlots]uint32{}, repo.record.Quests)
	assert.Equal(t, 1, repo.saves)

	removed, err = svc.Abandon(1)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, repo.saves, "nothing to save when quest is absent")
}

func TestRun_FileRepository(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soul.dat")
	sewer := filepath.Join(dir, "sewer")
	require.NoError(t, os.Mkdir(sewer, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(sewer, "big.rat"), nil, 0600))

	repo := NewFileRepository(path)
	require.NoError(t, repo.Save(soul.New()))

	svc := newService(repo, progress.NewTracker(sewer))

	var first bytes.Buffer
	require.NoError(t, svc.Run(&first))
	assert.Contains(t, first.String(), "Quest added to your journal.")

	var second bytes.Buffer
	require.NoError(t, svc.Run(&second))
	assert.Contains(t, second.String(), "Progress: 1 rats remaining")
	assert.Contains(t, second.String(), "All quest slots full (1/1).")

	require.NoError(t, os.Remove(filepath.Join(sewer, "big.rat")))

	var third bytes.Buffer
	require.NoError(t, svc.Run(&third))
	assert.Contains(t, third.String(), "*** QUEST COMPLETE! ***")

	loaded, err := soul.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1}, loaded.ActiveQuests())
	assert.Equal(t, uint32(100), loaded.HitPoints)
}
