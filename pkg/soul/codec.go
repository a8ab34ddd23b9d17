package soul

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

// Header field offsets
const (
	offMagic    = 0
	offVersion  = 4
	offChecksum = 6
	offLevel    = 14
	offXP       = 18
	offQuests   = 26
	offPadding  = 58
)

// zeroChunk is written repeatedly to materialise the hit point region
var zeroChunk [4096]byte

// Encode serializes a record into its on-disk form.
// The record is validated first; nothing is produced for an invalid record.
func Encode(r *Record) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, r.Size())
	putHeader(buf, r)
	// buf[HeaderSize:] is already zero

	return buf, nil
}

// EncodeTo writes the encoded record to w
func EncodeTo(w io.Writer, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	var header [HeaderSize]byte
	putHeader(header[:], r)

	if _, err := w.Write(header[:]); err != nil {
		return &IOError{Op: "write header", Err: err}
	}

	remaining := int64(r.HitPoints)
	for remaining > 0 {
		n := int64(len(zeroChunk))
		if remaining < n {
			n = remaining
		}
		if _, err := w.Write(zeroChunk[:n]); err != nil {
			return &IOError{Op: "write hit point region", Err: err}
		}
		remaining -= n
	}

	return nil
}

func putHeader(buf []byte, r *Record) {
	copy(buf[offMagic:], Magic)
	binary.LittleEndian.PutUint16(buf[offVersion:], Version)
	binary.LittleEndian.PutUint64(buf[offChecksum:], 0)
	binary.LittleEndian.PutUint32(buf[offLevel:], r.Level)
	binary.LittleEndian.PutUint64(buf[offXP:], r.Experience)
	for i, id := range r.Quests {
		binary.LittleEndian.PutUint32(buf[offQuests+4*i:], id)
	}
	binary.LittleEndian.PutUint32(buf[offPadding:], 0)
}

// Decode deserializes a record from its complete on-disk form
func Decode(data []byte) (*Record, error) {
	return DecodeFrom(bytes.NewReader(data), int64(len(data)))
}

// DecodeFrom reads a record from src whose total length is size.
// Only the header is read; hit points come from size alone, so the content
// of the trailing region is never inspected.
func DecodeFrom(src io.ReaderAt, size int64) (*Record, error) {
	if size < HeaderSize {
		return nil, &TooSmallError{Size: size}
	}

	var header [HeaderSize]byte
	if _, err := src.ReadAt(header[:], 0); err != nil {
		return nil, &IOError{Op: "read header", Err: err}
	}

	var magic [4]byte
	copy(magic[:], header[offMagic:offVersion])
	if string(magic[:]) != Magic {
		return nil, &BadMagicError{Found: magic}
	}

	version := binary.LittleEndian.Uint16(header[offVersion:])
	if version != Version {
		return nil, &UnsupportedVersionError{Version: version}
	}

	// Checksum at offChecksum is reserved and not verified

	level := binary.LittleEndian.Uint32(header[offLevel:])
	hitPoints := uint64(size - HeaderSize)
	if err := validate(level, hitPoints); err != nil {
		return nil, err
	}

	r := &Record{
		Level:      level,
		Experience: binary.LittleEndian.Uint64(header[offXP:]),
		HitPoints:  uint32(hitPoints),
	}
	for i := range r.Quests {
		r.Quests[i] = binary.LittleEndian.Uint32(header[offQuests+4*i:])
	}

	return r, nil
}

// bufferedEncode encodes r through a buffered writer sized for the whole record
func bufferedEncode(w io.Writer, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, int(r.Size()))
	if err := EncodeTo(bw, r); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}
