package soul

import (
	"math"
	"slices"
)

const (
	// Magic identifies a soul file
	Magic = "SHC!"

	// Version is the only supported format version
	Version uint16 = 1

	// HeaderSize is the size of everything before the hit point region
	HeaderSize = 62

	MaxLevel = 42

	// QuestSlots is the number of physical quest slots in a record
	QuestSlots = 8

	// SlotUnlockInterval is the number of levels between slot unlocks
	SlotUnlockInterval = 6

	baseHitPoints     = 100
	hitPointsPerLevel = 20
	baseExperience    = 1000.0
)

// Record is a player's persisted progression state
type Record struct {
	Level      uint32             // Player level (0-42)
	Experience uint64             // Current experience points
	Quests     [QuestSlots]uint32 // Quest ids, 0 = empty slot
	HitPoints  uint32             // Encoded as the length of the trailing region
}

// New creates a level 0 record at full health with no quests
func New() *Record {
	return &Record{
		HitPoints: MaxHitPoints(0),
	}
}

// MaxHitPoints returns the hit point ceiling for a level: 100 + level*20.
// The result saturates at math.MaxUint32.
func MaxHitPoints(level uint32) uint32 {
	hp := uint64(baseHitPoints) + uint64(level)*hitPointsPerLevel
	if hp > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(hp)
}

// ExperienceForNextLevel returns floor(1000 * 2^level).
//
// The value is computed in float64 and truncated, matching thresholds
// written by earlier tools. Results beyond the uint64 range saturate.
func ExperienceForNextLevel(level uint32) uint64 {
	xp := baseExperience * math.Pow(2, float64(level))
	if xp >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(xp)
}

// UnlockedSlotCount returns how many quest slots are usable at a level.
// Slot 0 is always unlocked, one more unlocks every SlotUnlockInterval levels.
func UnlockedSlotCount(level uint32) int {
	slots := 1 + uint64(level)/SlotUnlockInterval
	if slots > QuestSlots {
		return QuestSlots
	}
	return int(slots)
}

func (r *Record) MaxHitPoints() uint32 {
	return MaxHitPoints(r.Level)
}

func (r *Record) ExperienceForNextLevel() uint64 {
	return ExperienceForNextLevel(r.Level)
}

func (r *Record) UnlockedSlots() int {
	return UnlockedSlotCount(r.Level)
}

func (r *Record) IsSlotUnlocked(slot int) bool {
	return slot >= 0 && slot < r.UnlockedSlots()
}

// ActiveQuests returns the non-zero quest ids in unlocked slots, in slot order.
// Locked slots are ignored even if populated.
func (r *Record) ActiveQuests() []uint32 {
	active := make([]uint32, 0, QuestSlots)
	for _, id := range r.Quests[:r.UnlockedSlots()] {
		if id != 0 {
			active = append(active, id)
		}
	}
	return active
}

func (r *Record) HasQuest(id uint32) bool {
	return id != 0 && slices.Contains(r.ActiveQuests(), id)
}

// AddQuest places id in the first empty unlocked slot and returns its index
func (r *Record) AddQuest(id uint32) (int, error) {
	if id == 0 {
		return 0, ErrInvalidQuest
	}

	if r.HasQuest(id) {
		return 0, ErrQuestAlreadyActive
	}

	for i := 0; i < r.UnlockedSlots(); i++ {
		if r.Quests[i] == 0 {
			r.Quests[i] = id
			return i, nil
		}
	}

	return 0, ErrNoQuestSlots
}

// RemoveQuest clears every slot holding id, locked slots included.
// Returns true if any slot matched. The empty sentinel 0 never matches.
func (r *Record) RemoveQuest(id uint32) bool {
	if id == 0 {
		return false
	}

	removed := false
	for i := range r.Quests {
		if r.Quests[i] == id {
			r.Quests[i] = 0
			removed = true
		}
	}
	return removed
}

// Validate checks the level and hit point invariants without modifying the record
func (r *Record) Validate() error {
	return validate(r.Level, uint64(r.HitPoints))
}

func validate(level uint32, hitPoints uint64) error {
	if level > MaxLevel {
		return &InvalidLevelError{Level: level}
	}

	maxHP := MaxHitPoints(level)
	if hitPoints > uint64(maxHP) {
		return &InvalidHitPointsError{HitPoints: hitPoints, Max: maxHP}
	}

	return nil
}

// Size returns the encoded size of the record in bytes
func (r *Record) Size() int64 {
	return HeaderSize + int64(r.HitPoints)
}
