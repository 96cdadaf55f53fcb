// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package query

import (
	"sort"
	"strings"

	"github.com/jeranaias/relay/internal/model"
)

// UnknownDate is the bucket key for entries whose timestamp cannot be parsed.
const UnknownDate = "unknown"

// ============================================================================
// === TAIL ===
// ============================================================================

// Tail returns the last n entries of the chain in chronological order.
// When n exceeds the chain length the whole chain is returned; n <= 0
// yields an empty result.
func Tail(entries []model.Entry, n int) []model.Entry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	if n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

// ============================================================================
// === SEARCH ===
// ============================================================================

// Search finds entries whose message contains term, compared
// case-insensitively. Results are ordered most recent first and capped at
// limit. An empty term matches every entry.
func Search(entries []model.Entry, term string, limit int) []model.Entry {
	if limit <= 0 {
		return nil
	}
	needle := strings.ToLower(term)

	var matches []model.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Message), needle) {
			matches = append(matches, e)
		}
	}
	if len(matches) > limit {
		matches = matches[len(matches)-limit:]
	}

	// Newest first.
	out := make([]model.Entry, len(matches))
	for i, e := range matches {
		out[len(matches)-1-i] = e
	}
	return out
}

// ============================================================================
// === GROUPING ===
// ============================================================================

// GroupBySession buckets entries by their session number. Entries recorded
// before session tracking existed carry no session and land in bucket 0.
func GroupBySession(entries []model.Entry) map[int][]model.Entry {
	groups := make(map[int][]model.Entry)
	for _, e := range entries {
		groups[e.Session] = append(groups[e.Session], e)
	}
	return groups
}

// SessionNumbers returns the keys of a session grouping in ascending order,
// so callers can iterate deterministically.
func SessionNumbers(groups map[int][]model.Entry) []int {
	nums := make([]int, 0, len(groups))
	for n := range groups {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// GroupByDate buckets entries by the calendar day of their timestamp.
// Entries with an unparseable timestamp fall into the UnknownDate bucket.
func GroupByDate(entries []model.Entry) map[string][]model.Entry {
	groups := make(map[string][]model.Entry)
	for _, e := range entries {
		day, ok := e.Date()
		if !ok {
			day = UnknownDate
		}
		groups[day] = append(groups[day], e)
	}
	return groups
}

// Dates returns the keys of a date grouping sorted ascending, with the
// UnknownDate bucket (if present) always last.
func Dates(groups map[string][]model.Entry) []string {
	days := make([]string, 0, len(groups))
	hasUnknown := false
	for d := range groups {
		if d == UnknownDate {
			hasUnknown = true
			continue
		}
		days = append(days, d)
	}
	sort.Strings(days)
	if hasUnknown {
		days = append(days, UnknownDate)
	}
	return days
}
