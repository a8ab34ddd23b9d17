package soul

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
)

const defaultFileMode = 0644

// Load reads a record from the file at path
func Load(path string) (*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}

	r, err := DecodeFrom(file, stat.Size())
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, err
	}

	return r, nil
}

// Save replaces the file at path with the encoded record.
//
// The record is written to a temporary file in the same directory, synced,
// and renamed over path, so readers see either the old or the new record.
// An invalid record is rejected before anything touches the filesystem.
// If the rename succeeded but the directory sync failed the returned
// IOError has Ambiguous set.
func Save(path string, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	mode := os.FileMode(defaultFileMode)
	if stat, err := os.Stat(path); err == nil {
		mode = stat.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), ksuid.New()))

	if err := writeTemp(tmpPath, mode, r); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	if err := syncDir(dir); err != nil {
		return &IOError{Op: "sync directory", Path: dir, Err: err, Ambiguous: true}
	}

	return nil
}

// writeTemp writes and fsyncs the full record image to a new file
func writeTemp(tmpPath string, mode os.FileMode, r *Record) error {
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return &IOError{Op: "create", Path: tmpPath, Err: err}
	}

	if err := bufferedEncode(file, r); err != nil {
		_ = file.Close()
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = tmpPath
		}
		return err
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return &IOError{Op: "sync", Path: tmpPath, Err: err}
	}

	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: tmpPath, Err: err}
	}

	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Sync()
}
