// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	err := AtomicWriteFile(path, []byte("key = true\n"), 0644)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "key = true\n", string(data))
}

func TestAtomicWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, AtomicWriteFile(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, AtomicWriteFile(path, []byte("x"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 20))
	assert.Equal(t, "a long m...", Truncate("a long message here", 11))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestWrap_WordBoundaries(t *testing.T) {
	lines := Wrap("the chain grows longer with every run", 12)

	assert.Equal(t, []string{
		"the chain",
		"grows longer",
		"with every",
		"run",
	}, lines)
}

func TestWrap_ShortInputSingleLine(t *testing.T) {
	assert.Equal(t, []string{"hello"}, Wrap("hello", 80))
	assert.Equal(t, []string{""}, Wrap("", 80))
}

func TestWrap_OversizedWordIsSplit(t *testing.T) {
	lines := Wrap("abcdefghij", 4)

	assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
}

func TestWrap_WideRuneNarrowerThanWidth(t *testing.T) {
	// Each rune is two cells wide; a 1-cell limit must still make
	// progress and emit one rune per line.
	lines := Wrap("你好", 1)

	assert.Equal(t, []string{"你", "好"}, lines)
}
