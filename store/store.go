// Package store persists analysis records keyed by analysis id.
package store

import (
	"errors"

	"github.com/sitegauge/sitegauge/models"
)

// ErrNotFound is returned by Get for an unknown analysis id.
var ErrNotFound = errors.New("analysis not found")

// Store is the result store: one record per analysis id.
//
// Put is a full-record overwrite with atomic visibility; there is no
// compare-and-swap, callers read-modify-write under their own
// synchronization. Concurrent operations on distinct ids never interfere.
type Store interface {
	// Put writes the full record, replacing any previous version.
	Put(rec *models.AnalysisRecord) error

	// Get returns the record for id, or ErrNotFound.
	Get(id string) (*models.AnalysisRecord, error)

	// Delete removes the record for id, reporting whether it existed.
	Delete(id string) (bool, error)

	// List returns all records keyed by id.
	List() (map[string]*models.AnalysisRecord, error)
}
