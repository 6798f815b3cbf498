// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
)

// storeVersion tags the serialized envelope so a future format change can be
// detected instead of misparsed. An unknown version loads as empty.
const storeVersion = 1

// Entry is one cached value plus the freshness timestamp extracted from it.
// Timestamp is intrinsic to the data (the source's own "last updated"), not
// the time the entry was written.
type Entry struct {
	Timestamp time.Time       `json:"timestamp"`
	Value     json.RawMessage `json:"value"`
}

type envelope struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Store persists the whole key-to-entry mapping as a single file. Every Load
// and Save round-trips the full mapping; there are no partial reads or
// writes, and no locking.
type Store struct {
	path string
}

// NewStore opens a store backed by the given file. The file need not exist
// yet; its parent directory is created. The path must be resolved by the
// caller (flag, env, or default), the store itself consults nothing global.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("cache store requires a backing file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load deserializes the whole backing file. A missing, empty, or corrupt
// file yields an empty mapping, never an error: the cache prefers losing
// entries over failing the command. Corruption is logged so the loss is at
// least observable.
func (s *Store) Load() map[string]Entry {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warnf("cache store unreadable, starting empty: %s", s.path)
		}
		return map[string]Entry{}
	}
	if len(raw) == 0 {
		return map[string]Entry{}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.WithError(err).Warnf("cache store corrupt, starting empty: %s", s.path)
		return map[string]Entry{}
	}
	if env.Version != storeVersion {
		log.Warnf("cache store version %d (want %d), starting empty: %s",
			env.Version, storeVersion, s.path)
		return map[string]Entry{}
	}
	if env.Entries == nil {
		return map[string]Entry{}
	}
	return env.Entries
}

// Save serializes the entire mapping and replaces the backing file contents.
func (s *Store) Save(entries map[string]Entry) error {
	raw, err := json.Marshal(envelope{Version: storeVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to marshal cache store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write cache store: %w", err)
	}
	return nil
}
