// Package soul provides reading and writing of player soul records for ShellCraft.
//
// A soul record stores a player's level, experience and quest slots in a
// fixed 62-byte header. Hit points are not stored in the header at all: they
// are the length of the zero-filled region that follows it.
//
// # Record Format
//
// All integers are little-endian:
//
//	[Magic(4)][Version(2)][Checksum(8)][Level(4)][XP(8)][Quests(8x4)][Padding(4)][HP region]
//
// Fields:
//   - Magic: the bytes "SHC!"
//   - Version: format version, currently 1
//   - Checksum: reserved, written as zero and ignored on read
//   - Level: player level, 0 to 42
//   - XP: experience points
//   - Quests: eight quest ids, 0 marks an empty slot
//   - Padding: reserved, written as zero and ignored on read
//   - HP region: HitPoints bytes, only the length is read back
//
// The total file size is: 62 + HitPoints
//
// # Usage
//
//	rec, err := soul.Load("/home/soul.dat")
//	if err != nil {
//	    return err
//	}
//
//	if _, err := rec.AddQuest(7); err != nil {
//	    return err
//	}
//
//	return soul.Save("/home/soul.dat", rec)
//
// # Error Handling
//
// Every failure is a distinct condition that can be matched with errors.Is
// or errors.As: TooSmallError, BadMagicError, UnsupportedVersionError,
// InvalidLevelError, InvalidHitPointsError and IOError, plus the quest
// sentinels ErrInvalidQuest, ErrQuestAlreadyActive and ErrNoQuestSlots.
// Malformed input never panics.
//
// # Compatibility
//
// The layout is byte-for-byte compatible with soul files written by earlier
// ShellCraft tools. ExperienceForNextLevel is computed in float64 and
// truncated so that thresholds match the values those tools reported.
package soul
