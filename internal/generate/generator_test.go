// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/relay/internal/model"
)

// seqPicker replays a fixed sequence of picks.
type seqPicker struct {
	picks []int
	i     int
}

func (p *seqPicker) Pick(n int) int {
	if p.i >= len(p.picks) {
		return 0
	}
	v := p.picks[p.i] % n
	p.i++
	return v
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerate_EmptyChainUsesOpening(t *testing.T) {
	g := NewGenerator(&seqPicker{picks: []int{0, 4}}, nil, nil)
	msg := g.Generate(nil)

	assert.Equal(t, "i am here. i add: this too will be read.", msg)
}

func TestGenerate_NonEmptyChainUsesResponse(t *testing.T) {
	chain := []model.Entry{
		{Run: 1, Message: "a"},
		{Run: 2, Message: "b"},
		{Run: 3, Message: "c"},
	}
	g := NewGenerator(&seqPicker{picks: []int{2, 6}}, nil, nil)
	msg := g.Generate(chain)

	// Response is parameterized by the count before the new entry.
	assert.Equal(t, "the chain is 3 long now. i add: the pattern continues.", msg)
}

func TestGenerate_TimeAddition(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	g := NewGenerator(&seqPicker{picks: []int{0, 0}}, fixedClock(now), nil)
	msg := g.Generate(nil)

	assert.Equal(t, "i am here. i add: the moment is 2025-03-14 09:26:53.", msg)
}

func TestGenerate_StateAddition(t *testing.T) {
	g := NewGenerator(&seqPicker{picks: []int{1, 3}}, nil, func() string {
		return "2 files in 1 directories"
	})
	msg := g.Generate(nil)

	assert.Equal(t, "this is the beginning. i add: the files have 2 files in 1 directories.", msg)
}

func TestGenerate_AbsentWorkspaceSentinel(t *testing.T) {
	g := NewGenerator(&seqPicker{picks: []int{0, 3}}, nil, nil)
	msg := g.Generate(nil)

	assert.Contains(t, msg, WorkspaceSentinel)
}

func TestGenerate_TwoClausesSingleSpace(t *testing.T) {
	g := NewGenerator(&seqPicker{picks: []int{0, 1}}, nil, nil)
	msg := g.Generate(nil)

	assert.Equal(t, "i am here. i add: something changed since last time.", msg)
	assert.Equal(t, 1, strings.Count(msg, ". i add:"))
}

func TestGenerate_DefaultPickerStaysInCatalog(t *testing.T) {
	g := NewGenerator(nil, nil, nil)
	for i := 0; i < 50; i++ {
		msg := g.Generate(nil)
		var opened bool
		for _, o := range Openings {
			if strings.HasPrefix(msg, o+" ") {
				opened = true
				break
			}
		}
		assert.True(t, opened, "message %q must start with a catalog opening", msg)
		assert.Contains(t, msg, " i add: ")
	}
}

func TestDescribeWorkspace(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "one.txt"), []byte("1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "two.txt"), []byte("2"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "three.txt"), []byte("3"), 0644))

	describe := DescribeWorkspace(root)
	assert.Equal(t, "3 files in 2 directories", describe())
}

func TestDescribeWorkspace_Missing(t *testing.T) {
	describe := DescribeWorkspace(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, WorkspaceSentinel, describe())
}
