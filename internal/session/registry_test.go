// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIdentity returns an IdentityFunc that always yields the given key,
// simulating repeated invocations from the same parent process.
func fixedIdentity(id string) IdentityFunc {
	return func() string { return id }
}

func testManager(t *testing.T, id string) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.json")
	return NewManager(path, fixedIdentity(id), nil)
}

func TestDefaultIdentity(t *testing.T) {
	id := DefaultIdentity()
	assert.True(t, strings.HasPrefix(id, "session-"))
}

func TestManager_LoadMissingFile(t *testing.T) {
	m := testManager(t, "session-1")
	reg := m.Load()
	require.NotNil(t, reg)
	assert.Empty(t, reg.Sessions)
	assert.Nil(t, reg.Current)
}

func TestManager_LoadCorruptFile(t *testing.T) {
	m := testManager(t, "session-1")
	require.NoError(t, os.WriteFile(m.Path(), []byte("not json"), 0644))

	reg := m.Load()
	require.NotNil(t, reg)
	assert.Empty(t, reg.Sessions, "corrupt sessions file must load as a default registry")
}

func TestManager_ResumeOrCreate_New(t *testing.T) {
	m := testManager(t, "session-42")
	reg := m.Load()

	s, err := m.ResumeOrCreate(reg)
	require.NoError(t, err)
	assert.Equal(t, "session-42", s.ID)
	assert.Equal(t, 1, s.Number)
	assert.Equal(t, 1, s.MessageCount)
	assert.Empty(t, s.Notes)
	require.NotNil(t, reg.Current)
	assert.Equal(t, "session-42", *reg.Current)

	// Persisted immediately.
	reloaded := m.Load()
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, "session-42", reloaded.Sessions[0].ID)
}

func TestManager_ResumeOrCreate_IdempotentNumber(t *testing.T) {
	m := testManager(t, "session-42")
	reg := m.Load()

	first, err := m.ResumeOrCreate(reg)
	require.NoError(t, err)
	second, err := m.ResumeOrCreate(reg)
	require.NoError(t, err)

	assert.Equal(t, first.Number, second.Number)
	assert.Equal(t, 2, second.MessageCount, "message count increments exactly once per call")
	assert.Equal(t, 1, reg.Len())
}

func TestManager_ResumeOrCreate_DistinctIdentities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	a := NewManager(path, fixedIdentity("session-1"), nil)
	reg := a.Load()
	sa, err := a.ResumeOrCreate(reg)
	require.NoError(t, err)

	b := NewManager(path, fixedIdentity("session-2"), nil)
	sb, err := b.ResumeOrCreate(reg)
	require.NoError(t, err)

	assert.Equal(t, 1, sa.Number)
	assert.Equal(t, 2, sb.Number)
	require.NotNil(t, reg.Current)
	assert.Equal(t, "session-2", *reg.Current)
}

func TestManager_AddNote_NoSession(t *testing.T) {
	m := testManager(t, "session-7")
	reg := m.Load()

	ok, err := m.AddNote(reg, "orphan note")
	require.NoError(t, err)
	assert.False(t, ok, "a note must not create a session implicitly")
}

func TestManager_AddNote_ExistingSession(t *testing.T) {
	m := testManager(t, "session-7")
	reg := m.Load()
	_, err := m.ResumeOrCreate(reg)
	require.NoError(t, err)

	ok, err := m.AddNote(reg, "checkpoint reached")
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded := m.Load()
	require.Equal(t, 1, reloaded.Len())
	require.Len(t, reloaded.Sessions[0].Notes, 1)
	assert.Equal(t, "checkpoint reached", reloaded.Sessions[0].Notes[0].Text)
}

func TestComputeStats_Empty(t *testing.T) {
	m := testManager(t, "session-1")
	stats := ComputeStats(m.Load())

	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0, stats.TotalMessages)
	assert.Nil(t, stats.FirstSession)
	assert.Nil(t, stats.LastSession)
}

func TestComputeStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	clock := base
	now := func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	a := NewManager(path, fixedIdentity("session-1"), now)
	reg := a.Load()
	_, err := a.ResumeOrCreate(reg)
	require.NoError(t, err)
	_, err = a.ResumeOrCreate(reg)
	require.NoError(t, err)

	b := NewManager(path, fixedIdentity("session-2"), now)
	_, err = b.ResumeOrCreate(reg)
	require.NoError(t, err)

	stats := ComputeStats(reg)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 3, stats.TotalMessages)
	require.NotNil(t, stats.FirstSession)
	require.NotNil(t, stats.LastSession)
	assert.Equal(t, reg.Sessions[0].Started, *stats.FirstSession)
	assert.Equal(t, reg.Sessions[1].Started, *stats.LastSession)
}
