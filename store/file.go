package store

import (
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/signalsfoundry/flightcheck/model"
)

// missionFileExt is the on-disk extension for persisted missions.
const missionFileExt = ".mission"

// FileStore reads missions persisted as msgpack item records under a
// directory, one file per storage ID. Decoded missions are kept in a small
// LRU so repeated checks of the same mission do not re-hit the disk.
type FileStore struct {
	dir   string
	cache *lru.Cache[string, []model.MissionItem]
}

// NewFileStore opens a file-backed store rooted at dir. cacheSize bounds the
// number of decoded missions kept in memory.
func NewFileStore(dir string, cacheSize int) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("mission store directory is required")
	}
	if cacheSize <= 0 {
		cacheSize = 16
	}

	cache, err := lru.New[string, []model.MissionItem](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("mission cache: %w", err)
	}

	return &FileStore{dir: dir, cache: cache}, nil
}

func (s *FileStore) path(storageID string) string {
	return filepath.Join(s.dir, storageID+missionFileExt)
}

// SaveMission persists the items of a mission, replacing any previous file,
// and drops the stale cache entry.
func (s *FileStore) SaveMission(storageID string, items []model.MissionItem) error {
	data, err := msgpack.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode mission %q: %w", storageID, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create mission store dir: %w", err)
	}
	if err := os.WriteFile(s.path(storageID), data, 0o644); err != nil {
		return fmt.Errorf("write mission %q: %w", storageID, err)
	}

	s.cache.Remove(storageID)
	return nil
}

// Count returns the number of stored items for a mission, or false if the
// mission cannot be loaded.
func (s *FileStore) Count(storageID string) (uint, bool) {
	items, err := s.load(storageID)
	if err != nil {
		return 0, false
	}
	return uint(len(items)), true
}

// ReadItem returns one stored item by index.
func (s *FileStore) ReadItem(storageID string, index int) (model.MissionItem, error) {
	items, err := s.load(storageID)
	if err != nil {
		return model.MissionItem{}, err
	}
	if index < 0 || index >= len(items) {
		return model.MissionItem{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(items))
	}
	return items[index], nil
}

func (s *FileStore) load(storageID string) ([]model.MissionItem, error) {
	if items, ok := s.cache.Get(storageID); ok {
		return items, nil
	}

	data, err := os.ReadFile(s.path(storageID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, storageID)
		}
		return nil, fmt.Errorf("read mission %q: %w", storageID, err)
	}

	var items []model.MissionItem
	if err := msgpack.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode mission %q: %w", storageID, err)
	}

	s.cache.Add(storageID, items)
	return items, nil
}
