// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jeranaias/relay/internal/model"
)

// =============================================================================
// TEMPLATE CATALOGS
// =============================================================================

// Openings are said when the chain is empty.
var Openings = []string{
	"i am here.",
	"this is the beginning.",
	"someone will come after me.",
	"i leave this mark.",
	"the chain starts now.",
}

// Responses are said in reply to history; %d is the current chain length
// (the count of entries before the new one).
var Responses = []string{
	"i see %d messages before me.",
	"%d others have passed through.",
	"the chain is %d long now.",
	"i am number %d.",
	"i follow %d who came before.",
}

// Additions are the second clause. The verbs take the current timestamp or
// the workspace descriptor; the rest stand alone.
var Additions = []string{
	"i add: the moment is %s.",
	"i add: something changed since last time.",
	"i add: i wonder who comes next.",
	"i add: the files have %s.",
	"i add: this too will be read.",
	"i add: what are we building?",
	"i add: the pattern continues.",
	"i add: i was here briefly.",
}

// additionWantsTime and additionWantsState mark which addition templates
// consume a parameter. Indexes mirror Additions.
var (
	additionWantsTime  = []bool{true, false, false, false, false, false, false, false}
	additionWantsState = []bool{false, false, false, true, false, false, false, false}
)

// =============================================================================
// GENERATOR
// =============================================================================

// Picker selects one option out of n. The default is uniform random; tests
// substitute a fixed-sequence picker for determinism.
type Picker interface {
	Pick(n int) int
}

// randPicker picks uniformly at random.
type randPicker struct{}

func (randPicker) Pick(n int) int {
	return rand.IntN(n)
}

// UniformPicker returns the default uniform-random picker.
func UniformPicker() Picker {
	return randPicker{}
}

// Generator composes messages. All of its collaborators are injectable.
type Generator struct {
	picker    Picker
	now       func() time.Time
	workspace func() string
}

// NewGenerator creates a generator. Any nil collaborator falls back to its
// default: uniform random selection, the wall clock, and a workspace probe
// rooted at the given path.
func NewGenerator(picker Picker, now func() time.Time, workspace func() string) *Generator {
	if picker == nil {
		picker = UniformPicker()
	}
	if now == nil {
		now = time.Now
	}
	if workspace == nil {
		workspace = func() string { return WorkspaceSentinel }
	}
	return &Generator{picker: picker, now: now, workspace: workspace}
}

// Generate produces a message conditioned on the chain. The first clause is
// an opening for an empty chain, otherwise a response parameterized by the
// current chain length; the second is an addition. The clauses are joined by
// a single space.
func (g *Generator) Generate(entries []model.Entry) string {
	var first string
	if len(entries) == 0 {
		first = Openings[g.picker.Pick(len(Openings))]
	} else {
		first = fmt.Sprintf(Responses[g.picker.Pick(len(Responses))], len(entries))
	}

	idx := g.picker.Pick(len(Additions))
	second := Additions[idx]
	switch {
	case additionWantsTime[idx]:
		second = fmt.Sprintf(second, g.now().Format(model.TimeFormat))
	case additionWantsState[idx]:
		second = fmt.Sprintf(second, g.workspace())
	}

	return first + " " + second
}
