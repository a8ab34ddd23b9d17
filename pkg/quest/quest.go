// Package quest holds the quest text shown by the journal and offer screens.
package quest

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Quest is the display text and unlock rule for one quest id.
// Empty optional fields are omitted from the journal.
type Quest struct {
	ID       uint32 `yaml:"id"`
	Name     string `yaml:"name"`
	MinLevel uint32 `yaml:"min_level"`
	RewardXP uint32 `yaml:"reward_xp"`

	// Offer screen (when quest first becomes available)
	OfferTitle     string `yaml:"offer_title"`
	OfferNarrative string `yaml:"offer_narrative"`
	OfferObjective string `yaml:"offer_objective"`
	OfferReward    string `yaml:"offer_reward"`

	// Journal display (while quest is active)
	JournalDescription string `yaml:"journal_description"`

	// Optional
	JournalObjective  string `yaml:"journal_objective,omitempty"`
	JournalReward     string `yaml:"journal_reward,omitempty"`
	ProgressFormat    string `yaml:"progress_format,omitempty"`
	CompletionMessage string `yaml:"completion_message,omitempty"`
}

// Catalog maps quest ids to their text
type Catalog map[uint32]*Quest

// Get returns the quest with the given id
func (c Catalog) Get(id uint32) (*Quest, bool) {
	q, ok := c[id]
	return q, ok
}

// IDs returns all quest ids in ascending order
func (c Catalog) IDs() []uint32 {
	ids := make([]uint32, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c Catalog) Len() int {
	return len(c)
}

//go:embed quests.txt
var defaultQuests string

// Default returns the built-in quest catalog
func Default() Catalog {
	catalog, err := Parse(strings.NewReader(defaultQuests))
	if err != nil {
		panic(fmt.Sprintf("quest: built-in catalog is malformed: %v", err))
	}
	return catalog
}

// LoadFile reads a catalog from disk. Files ending in .yaml or .yml hold a
// list of quests; anything else uses the block text format read by Parse.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		catalog, err := Parse(strings.NewReader(string(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse quest file %s: %w", path, err)
		}
		return catalog, nil
	}
}

func parseYAML(data []byte) (Catalog, error) {
	var quests []*Quest
	if err := yaml.Unmarshal(data, &quests); err != nil {
		return nil, fmt.Errorf("failed to parse quest file: %w", err)
	}

	catalog := make(Catalog, len(quests))
	for _, q := range quests {
		if q == nil || q.ID == 0 {
			continue
		}
		if _, dup := catalog[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quest id %d", q.ID)
		}
		catalog[q.ID] = q
	}
	return catalog, nil
}
