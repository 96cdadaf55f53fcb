// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeranaias/relay/internal/model"
)

// =============================================================================
// CHAIN STORE
// =============================================================================

// Store reads and writes the chain file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given chain file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the chain file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted chain. A missing, unreadable, or malformed file
// loads as an empty chain; Load never fails.
func (s *Store) Load() []model.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []model.Entry{}
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []model.Entry{}
	}
	if entries == nil {
		return []model.Entry{}
	}
	return entries
}

// Append creates the next entry from the given message, appends it to the
// chain in memory, and persists the full updated chain. The new entry's
// sequence number is len(chain)+1 at the moment of the append.
func (s *Store) Append(entries []model.Entry, now time.Time, message string, session int) ([]model.Entry, model.Entry, error) {
	entry := model.NewEntry(len(entries)+1, now, message, session)
	updated := append(entries, entry)
	if err := s.Save(updated); err != nil {
		return entries, model.Entry{}, err
	}
	return updated, entry, nil
}

// Save writes the full chain back to the path, overwriting prior content.
// Output is pretty-printed with two-space indentation so the file stays
// readable and diffable. The write is a plain full-file overwrite: a crash
// mid-write may leave a truncated file, which Load recovers as empty.
func (s *Store) Save(entries []model.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chain: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chain directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write chain file: %w", err)
	}
	return nil
}
