// Package store holds the persisted-mission item stores the feasibility
// checker reads from. Reads are indexable and fallible; the checker treats
// any read failure as a hard, fail-closed rejection.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/signalsfoundry/flightcheck/model"
)

var (
	// ErrNotFound marks reads of missions the store does not hold.
	ErrNotFound = errors.New("mission not found")
	// ErrOutOfRange marks item indexes outside [0, count).
	ErrOutOfRange = errors.New("item index out of range")
)

// MemoryStore is an in-memory, thread-safe mission item store.
type MemoryStore struct {
	mu       sync.RWMutex
	missions map[string][]model.MissionItem
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{missions: make(map[string][]model.MissionItem)}
}

// PutMission stores the items of a mission. It returns an error if the
// storage ID is already taken.
func (s *MemoryStore) PutMission(storageID string, items []model.MissionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.missions[storageID]; exists {
		return fmt.Errorf("mission with storage ID %q already exists", storageID)
	}

	// copy so callers cannot mutate stored items afterwards
	stored := make([]model.MissionItem, len(items))
	copy(stored, items)
	s.missions[storageID] = stored
	return nil
}

// DeleteMission removes a mission if present.
func (s *MemoryStore) DeleteMission(storageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.missions, storageID)
}

// Count returns the number of stored items for a mission, or false if the
// mission is unknown.
func (s *MemoryStore) Count(storageID string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.missions[storageID]
	if !ok {
		return 0, false
	}
	return uint(len(items)), true
}

// ReadItem returns one stored item by index.
func (s *MemoryStore) ReadItem(storageID string, index int) (model.MissionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.missions[storageID]
	if !ok {
		return model.MissionItem{}, fmt.Errorf("%w: %q", ErrNotFound, storageID)
	}
	if index < 0 || index >= len(items) {
		return model.MissionItem{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(items))
	}
	return items[index], nil
}
