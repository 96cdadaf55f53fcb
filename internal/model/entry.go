// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// TimeFormat is the timestamp layout used for chain entries: local time at
// second precision. Entry timestamps are stored as strings so that the chain
// file stays human-readable and diffable.
const TimeFormat = "2006-01-02 15:04:05"

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is one record in the chain: a message plus metadata.
//
// Run is the 1-based sequence number, equal to len(chain)+1 at append time.
// Sequence numbers are immutable once written and are never reused, even if
// the chain file is truncated externally.
//
// Session is the number of the session that produced the entry; zero means
// the entry carries no session reference.
type Entry struct {
	Run     int    `json:"run"`
	Time    string `json:"time"`
	Message string `json:"message"`
	Session int    `json:"session,omitempty"`
}

// NewEntry creates an entry for the given sequence number, stamping it with
// the supplied wall-clock time.
func NewEntry(run int, now time.Time, message string, session int) Entry {
	return Entry{
		Run:     run,
		Time:    now.Format(TimeFormat),
		Message: message,
		Session: session,
	}
}

// Timestamp parses the entry's time string. ok is false when the stored
// string does not match TimeFormat.
func (e Entry) Timestamp() (t time.Time, ok bool) {
	t, err := time.ParseInLocation(TimeFormat, e.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Date returns the calendar-day prefix of the entry's timestamp, or ok=false
// when the timestamp is unparseable.
func (e Entry) Date() (date string, ok bool) {
	if len(e.Time) < 10 {
		return "", false
	}
	prefix := e.Time[:10]
	if _, err := time.Parse("2006-01-02", prefix); err != nil {
		return "", false
	}
	return prefix, true
}

// HasSession reports whether the entry references a session.
func (e Entry) HasSession() bool {
	return e.Session > 0
}
