// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// SESSION TYPES
// =============================================================================

// Note is a free-text annotation attached to a session.
type Note struct {
	Time time.Time `json:"time"`
	Text string    `json:"note"`
}

// Session is a logical grouping of invocations correlated by a heuristic
// process-identity key.
//
// ID is derived from the parent process and is stable only for the lifetime
// of that parent; two unrelated invocations sharing a parent collapse into
// one session, and a shell restart splits one logical session in two. That
// ambiguity is accepted, not hidden.
//
// Number is assigned once, at first appearance, and never reassigned.
// MessageCount increments by exactly one each time the session is resumed for
// a write operation; read-only invocations leave it untouched.
type Session struct {
	ID           string    `json:"id"`
	Number       int       `json:"number"`
	Started      time.Time `json:"started"`
	LastActive   time.Time `json:"last_active"`
	MessageCount int       `json:"message_count"`
	Notes        []Note    `json:"notes"`
}

// NewSession creates a session record for a first appearance.
func NewSession(id string, number int, now time.Time) *Session {
	return &Session{
		ID:           id,
		Number:       number,
		Started:      now,
		LastActive:   now,
		MessageCount: 1,
		Notes:        []Note{},
	}
}

// AddNote appends a timestamped note.
func (s *Session) AddNote(now time.Time, text string) {
	s.Notes = append(s.Notes, Note{Time: now, Text: text})
}

// Touch records activity: bumps LastActive and the message count.
func (s *Session) Touch(now time.Time) {
	s.LastActive = now
	s.MessageCount++
}

// =============================================================================
// REGISTRY TYPE
// =============================================================================

// Registry is the persisted collection of all known sessions, in order of
// first appearance, plus the id of the currently active one. Current is nil
// when no session has ever been started; the key is still written so the
// file shape stays {sessions, current}.
type Registry struct {
	Sessions []*Session `json:"sessions"`
	Current  *string    `json:"current"`
}

// NewRegistry returns an empty registry, the value a missing or corrupt
// sessions file loads as.
func NewRegistry() *Registry {
	return &Registry{Sessions: []*Session{}}
}

// FindByID returns the session with the given identity, or nil.
func (r *Registry) FindByID(id string) *Session {
	for _, s := range r.Sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Len returns the number of known sessions.
func (r *Registry) Len() int {
	return len(r.Sessions)
}
