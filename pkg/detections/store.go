package detections

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/blueteamops/detsync/pkg/errors"
	"github.com/blueteamops/detsync/pkg/logging"
)

// Store loads and persists the snapshot as a pretty-printed JSON array.
// The serialization is deterministic and ends with a trailing newline so
// external diffing stays byte-stable across runs.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot from disk. A missing, unreadable, or corrupt
// file is treated as an empty prior state, never as an error.
func (s *Store) Load() Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn().Err(err).Str("path", s.path).
				Msg("snapshot unreadable, starting from empty state")
		}
		return Snapshot{}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logging.Warn().Err(err).Str("path", s.path).
			Msg("snapshot corrupt, starting from empty state")
		return Snapshot{}
	}
	if snap == nil {
		return Snapshot{}
	}
	return snap
}

// Save atomically overwrites the snapshot file by writing to a temp file
// in the same directory and renaming it into place.
func (s *Store) Save(snap Snapshot) error {
	if snap == nil {
		snap = Snapshot{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.WrapParse("json", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".detections-*.json")
	if err != nil {
		return errors.WrapIO("create", s.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", s.path, err)
	}
	return nil
}
