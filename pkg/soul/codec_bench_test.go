//go:build bench
// +build bench

package soul

import (
	"io"
	"path/filepath"
	"testing"
)

func benchRecords() []struct {
	name   string
	record *Record
} {
	return []struct {
		name   string
		record *Record
	}{
		{"empty", &Record{}},
		{"fresh", New()},
		{"max", &Record{Level: MaxLevel, HitPoints: MaxHitPoints(MaxLevel), Quests: [QuestSlots]uint32{1, 2, 3, 4, 5, 6, 7, 8}}},
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, bm := range benchRecords() {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Encode(bm.record); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeTo(b *testing.B) {
	for _, bm := range benchRecords() {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := EncodeTo(io.Discard, bm.record); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, bm := range benchRecords() {
		b.Run(bm.name, func(b *testing.B) {
			encoded, err := Encode(bm.record)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Decode(encoded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSave(b *testing.B) {
	path := filepath.Join(b.TempDir(), "soul.dat")
	r := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Save(path, r); err != nil {
			b.Fatal(err)
		}
	}
}
