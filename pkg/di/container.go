// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/shellcraft/pkg/journal"
	"github.com/ssargent/shellcraft/pkg/progress"
	"github.com/ssargent/shellcraft/pkg/quest"
)

// RepositoryFactory opens the soul record stored at path
type RepositoryFactory func(path string) journal.Repository

// TrackerFactory creates a progress checker rooted at the sewer directory
type TrackerFactory func(sewerDir string) journal.ProgressChecker

// CatalogLoader loads quest text from path; an empty path means the built-in catalog
type CatalogLoader func(path string) (quest.Catalog, error)

// Container holds all the dependencies for the application
type Container struct {
	repositoryFactory RepositoryFactory
	trackerFactory    TrackerFactory
	catalogLoader     CatalogLoader
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		repositoryFactory: func(path string) journal.Repository {
			return journal.NewFileRepository(path)
		},
		trackerFactory: func(sewerDir string) journal.ProgressChecker {
			return progress.NewTracker(sewerDir)
		},
		catalogLoader: loadCatalog,
	}
}

func loadCatalog(path string) (quest.Catalog, error) {
	if path == "" {
		return quest.Default(), nil
	}
	return quest.LoadFile(path)
}

// Repository returns the soul repository for path
func (c *Container) Repository(path string) journal.Repository {
	return c.repositoryFactory(path)
}

// Tracker returns the progress checker for sewerDir
func (c *Container) Tracker(sewerDir string) journal.ProgressChecker {
	return c.trackerFactory(sewerDir)
}

// Catalog loads the quest catalog
func (c *Container) Catalog(path string) (quest.Catalog, error) {
	return c.catalogLoader(path)
}

// SetRepositoryFactory allows overriding the repository factory (for testing)
func (c *Container) SetRepositoryFactory(factory RepositoryFactory) {
	c.repositoryFactory = factory
}

// SetTrackerFactory allows overriding the tracker factory (for testing)
func (c *Container) SetTrackerFactory(factory TrackerFactory) {
	c.trackerFactory = factory
}

// SetCatalogLoader allows overriding the catalog loader (for testing)
func (c *Container) SetCatalogLoader(loader CatalogLoader) {
	c.catalogLoader = loader
}
