package journal

import (
	"github.com/ssargent/shellcraft/pkg/soul"
)

// Repository loads and persists the player's soul record
type Repository interface {
	Load() (*soul.Record, error)
	Save(r *soul.Record) error
}

// FileRepository stores the record in a single soul file
type FileRepository struct {
	Path string
}

// NewFileRepository creates a repository for the soul file at path
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

func (f *FileRepository) Load() (*soul.Record, error) {
	return soul.Load(f.Path)
}

func (f *FileRepository) Save(r *soul.Record) error {
	return soul.Save(f.Path, r)
}
