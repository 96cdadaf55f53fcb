// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jeranaias/relay/internal/model"
)

// =============================================================================
// SESSION IDENTITY
// =============================================================================

// IdentityFunc derives the current session's correlation key. The default
// uses the parent process id, which changes with each terminal or agent run.
type IdentityFunc func() string

// DefaultIdentity returns "session-<ppid>". Two unrelated invocations that
// share a parent collapse into one session; a parent restart splits one
// logical session in two. Both are accepted ambiguities of the heuristic.
func DefaultIdentity() string {
	return "session-" + strconv.Itoa(os.Getppid())
}

// =============================================================================
// REGISTRY MANAGER
// =============================================================================

// Manager loads, mutates, and persists the session registry file.
type Manager struct {
	path     string
	identity IdentityFunc
	now      func() time.Time
}

// NewManager creates a manager for the given registry file path.
// identity and now may be nil, in which case the parent-pid identity and the
// wall clock are used.
func NewManager(path string, identity IdentityFunc, now func() time.Time) *Manager {
	if identity == nil {
		identity = DefaultIdentity
	}
	if now == nil {
		now = time.Now
	}
	return &Manager{path: path, identity: identity, now: now}
}

// Path returns the registry file path.
func (m *Manager) Path() string {
	return m.path
}

// Identity returns the current correlation key.
func (m *Manager) Identity() string {
	return m.identity()
}

// Load returns the persisted registry. A missing, unreadable, or malformed
// file loads as an empty registry; Load never fails.
func (m *Manager) Load() *model.Registry {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return model.NewRegistry()
	}

	reg := model.NewRegistry()
	if err := json.Unmarshal(data, reg); err != nil {
		return model.NewRegistry()
	}
	if reg.Sessions == nil {
		reg.Sessions = []*model.Session{}
	}
	return reg
}

// Save writes the full registry back to the path, pretty-printed.
func (m *Manager) Save(reg *model.Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create sessions directory: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sessions file: %w", err)
	}
	return nil
}

// ResumeOrCreate looks up the current identity in the registry. An existing
// session gets its last-active time refreshed and its message count bumped;
// a new one is appended with the next 1-based number and becomes current.
// Either way the registry is persisted and the session returned.
func (m *Manager) ResumeOrCreate(reg *model.Registry) (*model.Session, error) {
	id := m.identity()
	now := m.now()

	if existing := reg.FindByID(id); existing != nil {
		existing.Touch(now)
		if err := m.Save(reg); err != nil {
			return nil, err
		}
		return existing, nil
	}

	s := model.NewSession(id, reg.Len()+1, now)
	reg.Sessions = append(reg.Sessions, s)
	reg.Current = &id
	if err := m.Save(reg); err != nil {
		return nil, err
	}
	return s, nil
}

// AddNote attaches a note to the current identity's session and persists the
// registry. It reports false when no session exists for the identity; a note
// never creates a session implicitly — callers that want a note on a fresh
// session must call ResumeOrCreate first.
func (m *Manager) AddNote(reg *model.Registry, text string) (bool, error) {
	s := reg.FindByID(m.identity())
	if s == nil {
		return false, nil
	}

	s.AddNote(m.now(), text)
	if err := m.Save(reg); err != nil {
		return false, err
	}
	return true, nil
}

// =============================================================================
// SESSION STATISTICS
// =============================================================================

// Stats aggregates the registry. TotalMessages sums every session's message
// count, which is tracked independently of the chain length; the two can
// diverge under note-only or read-only invocations, and that divergence is
// preserved rather than unified.
type Stats struct {
	TotalSessions int        `json:"total_sessions"`
	TotalMessages int        `json:"total_messages"`
	FirstSession  *time.Time `json:"first_session,omitempty"`
	LastSession   *time.Time `json:"last_session,omitempty"`
}

// ComputeStats aggregates over all sessions in the registry.
func ComputeStats(reg *model.Registry) Stats {
	stats := Stats{TotalSessions: reg.Len()}
	if reg.Len() == 0 {
		return stats
	}

	for _, s := range reg.Sessions {
		stats.TotalMessages += s.MessageCount
	}

	first := reg.Sessions[0].Started
	last := reg.Sessions[reg.Len()-1].Started
	stats.FirstSession = &first
	stats.LastSession = &last
	return stats
}
