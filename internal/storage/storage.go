// Package storage is the persistence adapter: durable storage of named
// JSON-serializable collections addressed by string keys. Two backends
// exist, a single JSON document file and an embedded badger database,
// and they must be indistinguishable from the repositories' point of
// view.
package storage

import (
	"errors"
	"sync"
)

// Collection keys. The names are part of the persisted format and must
// not change.
const (
	KeyPatients      = "clinic_patients"
	KeyRecords       = "clinic_records"
	KeyDrugs         = "clinic_drugs"
	KeySettings      = "clinic_settings"
	KeyExpenses      = "clinic_expenses"
	KeyDrugPurchases = "clinic_drug_purchases"
	KeyAppointments  = "clinic_appointments"

	// KeyLastHN backs the legacy auto-increment HN generator.
	KeyLastHN = "clinic_last_hn"
)

// ErrKeyNotFound is returned by Read when the key has never been
// written. Repositories treat it as "empty collection".
var ErrKeyNotFound = errors.New("storage: key not found")

// Store reads and writes one JSON value per key.
type Store interface {
	// Read decodes the value stored under key into out.
	Read(key string, out any) error
	// Write encodes v and stores it under key, replacing any previous
	// value.
	Write(key string, v any) error
	Close() error
}

// MemStore is a map-backed Store used by tests.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Read(key string, out any) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return ErrKeyNotFound
	}
	return unmarshal(raw, out)
}

func (s *MemStore) Write(key string, v any) error {
	raw, err := marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Close() error { return nil }

// Corrupt overwrites a key with bytes that will not decode, for
// exercising the fail-open read path in tests.
func (s *MemStore) Corrupt(key string) {
	s.mu.Lock()
	s.data[key] = []byte("{not json")
	s.mu.Unlock()
}
