package soul

import (
	"errors"
	"fmt"
)

var (
	ErrTooSmall           = errors.New("soul: file too small")
	ErrBadMagic           = errors.New("soul: invalid magic")
	ErrUnsupportedVersion = errors.New("soul: unsupported version")
	ErrInvalidLevel       = errors.New("soul: invalid level")
	ErrInvalidHitPoints   = errors.New("soul: invalid hit points")

	ErrInvalidQuest       = errors.New("soul: invalid quest id (cannot be 0)")
	ErrQuestAlreadyActive = errors.New("soul: quest already active")
	ErrNoQuestSlots       = errors.New("soul: no available quest slots")
)

// IOError wraps a failed read, write or metadata operation.
// Ambiguous is set when a save failed after the target may already have
// been replaced, so the persisted state is unknown.
type IOError struct {
	Op        string
	Path      string
	Err       error
	Ambiguous bool
}

func (e *IOError) Error() string {
	msg := fmt.Sprintf("soul: %s", e.Op)
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Err.Error()
	if e.Ambiguous {
		msg += " (persisted state unknown)"
	}
	return msg
}

func (e *IOError) Unwrap() error { return e.Err }

// TooSmallError reports a source shorter than the fixed header.
type TooSmallError struct {
	Size int64
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("soul: file too small: %d bytes (need >= %d)", e.Size, HeaderSize)
}

func (e *TooSmallError) Is(target error) bool { return target == ErrTooSmall }

// BadMagicError reports the tag found where Magic was expected.
type BadMagicError struct {
	Found [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("soul: invalid magic bytes: %q", e.Found[:])
}

func (e *BadMagicError) Is(target error) bool { return target == ErrBadMagic }

type UnsupportedVersionError struct {
	Version uint16
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("soul: unsupported version: %d", e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }

type InvalidLevelError struct {
	Level uint32
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("soul: invalid level: %d (max %d)", e.Level, MaxLevel)
}

func (e *InvalidLevelError) Is(target error) bool { return target == ErrInvalidLevel }

// InvalidHitPointsError carries the observed hit points and the level's ceiling.
// HitPoints is 64 bits wide because a decoded trailing region may exceed uint32.
type InvalidHitPointsError struct {
	HitPoints uint64
	Max       uint32
}

func (e *InvalidHitPointsError) Error() string {
	return fmt.Sprintf("soul: invalid hit points: %d (max %d for level)", e.HitPoints, e.Max)
}

func (e *InvalidHitPointsError) Is(target error) bool { return target == ErrInvalidHitPoints }
