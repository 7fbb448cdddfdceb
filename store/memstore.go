package store

import (
	"encoding/json"
	"sync"

	"github.com/sitegauge/sitegauge/models"
)

// MemStore is an in-memory Store, used in tests and as a fallback when no
// durable directory is available. Records are deep-copied on the way in and
// out so callers never share mutable state with the store.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]*models.AnalysisRecord
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]*models.AnalysisRecord)}
}

// copyRecord deep-copies a record via its JSON form; records are plain data.
func copyRecord(rec *models.AnalysisRecord) *models.AnalysisRecord {
	data, _ := json.Marshal(rec)
	var out models.AnalysisRecord
	_ = json.Unmarshal(data, &out)
	return &out
}

// Put writes the full record, replacing any previous version.
func (s *MemStore) Put(rec *models.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = copyRecord(rec)
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *MemStore) Get(id string) (*models.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(rec), nil
}

// Delete removes the record for id, reporting whether it existed.
func (s *MemStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[id]
	delete(s.records, id)
	return ok, nil
}

// List returns all records keyed by id.
func (s *MemStore) List() (map[string]*models.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*models.AnalysisRecord, len(s.records))
	for id, rec := range s.records {
		out[id] = copyRecord(rec)
	}
	return out, nil
}
