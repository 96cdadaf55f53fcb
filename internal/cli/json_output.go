// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - machine-readable output envelope for --json mode.
package cli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jeranaias/relay/internal/model"
	"github.com/jeranaias/relay/internal/query"
	"github.com/jeranaias/relay/internal/session"
)

// JSONResponse is the envelope every command emits in --json mode.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific payload
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates an error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	msg := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      nil,
		Error:     &msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// PrintTo writes the indented JSON response to w.
func (r *JSONResponse) PrintTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// RelayData is the payload of the default append command.
type RelayData struct {
	Entry       model.Entry `json:"entry"`
	ChainLength int         `json:"chain_length"`
	Session     int         `json:"session"`
	MessageNum  int         `json:"message_num"`
	StoredAt    string      `json:"stored_at"`
}

// ShowData is the payload of --show / --last.
type ShowData struct {
	Entries []model.Entry `json:"entries"`
	Total   int           `json:"total"`
}

// SearchData is the payload of --search.
type SearchData struct {
	Term    string        `json:"term"`
	Matches []model.Entry `json:"matches"`
}

// HistoryData is the payload of --history.
type HistoryData struct {
	ByDate    map[string][]model.Entry `json:"by_date"`
	BySession map[int][]model.Entry    `json:"by_session"`
}

// SessionsData is the payload of --sessions.
type SessionsData struct {
	Sessions []*model.Session `json:"sessions"`
	Stats    session.Stats    `json:"stats"`
}

// NoteData is the payload of --note.
type NoteData struct {
	Note    string `json:"note"`
	Session int    `json:"session"`
}

// StatsData is the payload of --stats.
type StatsData struct {
	Sessions session.Stats    `json:"sessions"`
	Chain    query.ChainStats `json:"chain"`
}

// ExportData is the payload of --export.
type ExportData struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Format  string `json:"format"`
	Entries int    `json:"entries"`
}

// VersionData is the payload of --version.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}
