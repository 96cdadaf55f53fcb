// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/relay/internal/model"
)

func makeChain(messages ...string) []model.Entry {
	chain := make([]model.Entry, len(messages))
	for i, m := range messages {
		chain[i] = model.Entry{
			Run:     i + 1,
			Time:    "2025-03-01 10:00:00",
			Message: m,
		}
	}
	return chain
}

func messagesOf(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// ============================================================================
// === TAIL ===
// ============================================================================

func TestTail_LastN(t *testing.T) {
	chain := makeChain("a", "b", "c", "d", "e")

	got := Tail(chain, 3)

	assert.Equal(t, []string{"c", "d", "e"}, messagesOf(got))
}

func TestTail_NLargerThanChain(t *testing.T) {
	chain := makeChain("a", "b", "c", "d", "e")

	got := Tail(chain, 10)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, messagesOf(got))
}

func TestTail_ZeroAndEmpty(t *testing.T) {
	assert.Empty(t, Tail(makeChain("a"), 0))
	assert.Empty(t, Tail(nil, 5))
}

// ============================================================================
// === SEARCH ===
// ============================================================================

func TestSearch_MostRecentFirst(t *testing.T) {
	chain := makeChain("alpha", "beta alpha", "gamma")

	got := Search(chain, "alpha", 10)

	assert.Equal(t, []string{"beta alpha", "alpha"}, messagesOf(got))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	chain := makeChain("The Chain Grows", "nothing here")

	got := Search(chain, "CHAIN", 10)

	require.Len(t, got, 1)
	assert.Equal(t, "The Chain Grows", got[0].Message)
}

func TestSearch_Limit(t *testing.T) {
	chain := makeChain("x one", "x two", "x three", "x four")

	got := Search(chain, "x", 2)

	// Only the newest two matches survive the cap.
	assert.Equal(t, []string{"x four", "x three"}, messagesOf(got))
}

func TestSearch_NoMatch(t *testing.T) {
	chain := makeChain("alpha", "beta")

	assert.Empty(t, Search(chain, "omega", 10))
}

// ============================================================================
// === GROUPING ===
// ============================================================================

func TestGroupBySession_SessionlessEntriesInBucketZero(t *testing.T) {
	chain := []model.Entry{
		{Run: 1, Message: "old"},
		{Run: 2, Message: "first", Session: 1},
		{Run: 3, Message: "second", Session: 2},
		{Run: 4, Message: "third", Session: 1},
	}

	groups := GroupBySession(chain)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"old"}, messagesOf(groups[0]))
	assert.Equal(t, []string{"first", "third"}, messagesOf(groups[1]))
	assert.Equal(t, []string{"second"}, messagesOf(groups[2]))
	assert.Equal(t, []int{0, 1, 2}, SessionNumbers(groups))
}

func TestGroupByDate_UnknownBucket(t *testing.T) {
	chain := []model.Entry{
		{Run: 1, Time: "2025-03-01 09:00:00", Message: "a"},
		{Run: 2, Time: "2025-03-02 09:00:00", Message: "b"},
		{Run: 3, Time: "not a timestamp", Message: "c"},
		{Run: 4, Time: "2025-03-01 18:00:00", Message: "d"},
	}

	groups := GroupByDate(chain)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"a", "d"}, messagesOf(groups["2025-03-01"]))
	assert.Equal(t, []string{"b"}, messagesOf(groups["2025-03-02"]))
	assert.Equal(t, []string{"c"}, messagesOf(groups[UnknownDate]))
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", UnknownDate}, Dates(groups))
}

// ============================================================================
// === STATISTICS ===
// ============================================================================

func TestChainStatistics_Empty(t *testing.T) {
	stats := ChainStatistics(nil)

	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.First)
	assert.Empty(t, stats.TopWords)
}

func TestChainStatistics_WordFrequency(t *testing.T) {
	chain := []model.Entry{
		{Run: 1, Time: "2025-03-01 09:00:00", Message: "the chain is long now", Session: 1},
		{Run: 2, Time: "2025-03-02 10:00:00", Message: "the files have state", Session: 1},
	}

	stats := ChainStatistics(chain)

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, "2025-03-01 09:00:00", stats.First)
	assert.Equal(t, "2025-03-02 10:00:00", stats.Last)

	// Short words ("the", "is", "now") never enter the table.
	counts := make(map[string]int)
	for _, wc := range stats.TopWords {
		counts[wc.Word] = wc.Count
	}
	assert.Equal(t, 1, counts["chain"])
	assert.Equal(t, 1, counts["long"])
	assert.Equal(t, 1, counts["files"])
	assert.Equal(t, 1, counts["have"])
	assert.Equal(t, 1, counts["state"])
	assert.NotContains(t, counts, "the")
	assert.NotContains(t, counts, "now")
	assert.Equal(t, 5, stats.TotalWords)
	assert.Equal(t, 5, stats.DistinctWords)
}

func TestChainStatistics_TopWordsRankedAndCapped(t *testing.T) {
	var chain []model.Entry
	// "echo" 3 times, "delta" 2 times, then 10 singletons.
	chain = append(chain, makeChain("echo echo echo", "delta delta")...)
	chain = append(chain, makeChain(
		"aaaa", "bbbb", "cccc", "dddd", "eeee",
		"ffff", "gggg", "hhhh", "iiii", "jjjj",
	)...)

	stats := ChainStatistics(chain)

	require.Len(t, stats.TopWords, TopWordLimit)
	assert.Equal(t, WordCount{Word: "echo", Count: 3}, stats.TopWords[0])
	assert.Equal(t, WordCount{Word: "delta", Count: 2}, stats.TopWords[1])
	// Ties break alphabetically.
	assert.Equal(t, "aaaa", stats.TopWords[2].Word)
	assert.Equal(t, 12, stats.DistinctWords)
}

func TestChainStatistics_LengthsAndSessions(t *testing.T) {
	chain := []model.Entry{
		{Run: 1, Time: "2025-03-01 09:00:00", Message: "ab", Session: 1},
		{Run: 2, Time: "2025-03-01 10:00:00", Message: "abcd", Session: 2},
		{Run: 3, Time: "2025-03-01 11:00:00", Message: "abcdef", Session: 2},
	}

	stats := ChainStatistics(chain)

	assert.Equal(t, 2, stats.MinLength)
	assert.Equal(t, 6, stats.MaxLength)
	assert.InDelta(t, 4.0, stats.AvgLength, 0.001)
	assert.Equal(t, map[int]int{1: 1, 2: 2}, stats.PerSession)
	assert.Equal(t, 2, stats.MostActive)
}
