//go:build fuzz
// +build fuzz

package soul

import (
	"testing"
)

// FuzzDecode feeds arbitrary bytes to the decoder; it must never panic and
// anything it accepts must re-encode to the same header and length.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("SHC!"))
	f.Add(make([]byte, HeaderSize-1))
	f.Add(header(0, 0))
	f.Add(header(42, 940))
	f.Add(header(43, 0))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("Input too large for fuzz test")
		}

		r, err := Decode(data)
		if err != nil {
			return
		}

		if err := r.Validate(); err != nil {
			t.Fatalf("Decode returned an invalid record: %v", err)
		}

		encoded, err := Encode(r)
		if err != nil {
			t.Fatalf("Encode failed for decoded record: %v", err)
		}

		if len(encoded) != len(data) {
			t.Errorf("length mismatch: got %d, want %d", len(encoded), len(data))
		}
	})
}

// FuzzRoundTrip checks decode(encode(r)) == r for valid records
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint32(0), uint64(0), uint32(0), uint32(100))
	f.Add(uint32(42), uint64(1)<<63, uint32(7), uint32(940))

	f.Fuzz(func(t *testing.T, level uint32, xp uint64, quest uint32, hp uint32) {
		r := &Record{Level: level % (MaxLevel + 1), Experience: xp}
		r.HitPoints = hp % (r.MaxHitPoints() + 1)
		r.Quests[level%QuestSlots] = quest

		encoded, err := Encode(r)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}

		if *decoded != *r {
			t.Errorf("round trip mismatch: got %+v, want %+v", *decoded, *r)
		}
	})
}
