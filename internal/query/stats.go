// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package query

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/relay/internal/model"
)

// TopWordLimit caps how many words ChainStatistics reports.
const TopWordLimit = 10

// MinWordLength is the exclusive length threshold for the word frequency
// table: only words strictly longer than this count.
const MinWordLength = 3

// WordCount pairs a word with how often it occurred across the chain.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ChainStats summarizes a whole chain.
type ChainStats struct {
	Count int `json:"count"`

	// First and Last are the raw timestamp strings of the oldest and
	// newest entries, empty when the chain is empty.
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`

	// Message lengths in runes.
	AvgLength float64 `json:"avg_length"`
	MinLength int     `json:"min_length"`
	MaxLength int     `json:"max_length"`

	TotalWords    int         `json:"total_words"`
	DistinctWords int         `json:"distinct_words"`
	TopWords      []WordCount `json:"top_words,omitempty"`

	// PerSession counts entries by session number; MostActive is the
	// session number with the most entries (lowest number on ties), or
	// zero when the chain is empty.
	PerSession map[int]int `json:"per_session,omitempty"`
	MostActive int         `json:"most_active_session,omitempty"`
}

// ChainStatistics computes aggregate statistics over the chain. Words are
// obtained by splitting messages on whitespace and lowercasing; only words
// longer than MinWordLength characters enter the frequency table. No
// punctuation stripping is applied, so "state." and "state" count separately.
func ChainStatistics(entries []model.Entry) ChainStats {
	stats := ChainStats{Count: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	stats.First = entries[0].Time
	stats.Last = entries[len(entries)-1].Time

	freq := make(map[string]int)
	stats.PerSession = make(map[int]int)

	totalLen := 0
	stats.MinLength = utf8.RuneCountInString(entries[0].Message)
	for _, e := range entries {
		n := utf8.RuneCountInString(e.Message)
		totalLen += n
		if n < stats.MinLength {
			stats.MinLength = n
		}
		if n > stats.MaxLength {
			stats.MaxLength = n
		}

		for _, w := range strings.Fields(strings.ToLower(e.Message)) {
			if utf8.RuneCountInString(w) > MinWordLength {
				freq[w]++
				stats.TotalWords++
			}
		}

		stats.PerSession[e.Session]++
	}
	stats.AvgLength = float64(totalLen) / float64(len(entries))
	stats.DistinctWords = len(freq)
	stats.TopWords = topWords(freq, TopWordLimit)
	stats.MostActive = mostActive(stats.PerSession)
	return stats
}

// topWords ranks the frequency table by count descending, breaking ties
// alphabetically, and keeps at most limit words.
func topWords(freq map[string]int, limit int) []WordCount {
	ranked := make([]WordCount, 0, len(freq))
	for w, c := range freq {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func mostActive(perSession map[int]int) int {
	best, bestCount := 0, -1
	for session, count := range perSession {
		if count > bestCount || (count == bestCount && session < best) {
			best, bestCount = session, count
		}
	}
	return best
}
