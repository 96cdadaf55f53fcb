// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - command handlers for relay.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeranaias/relay/internal/chain"
	"github.com/jeranaias/relay/internal/config"
	"github.com/jeranaias/relay/internal/export"
	"github.com/jeranaias/relay/internal/generate"
	"github.com/jeranaias/relay/internal/model"
	"github.com/jeranaias/relay/internal/query"
	"github.com/jeranaias/relay/internal/session"
	"github.com/jeranaias/relay/internal/util"
)

// App wires the stores and the generator behind the command handlers.
type App struct {
	cfg      config.Config
	store    *chain.Store
	sessions *session.Manager
	gen      *generate.Generator
	out      io.Writer
	now      func() time.Time
}

// NewApp builds an App from resolved configuration. An args.ChainPath
// override replaces the configured chain file for this invocation only.
func NewApp(cfg config.Config, args Args) *App {
	chainPath := cfg.ChainPath
	if args.ChainPath != "" {
		chainPath = args.ChainPath
	}
	return &App{
		cfg:      cfg,
		store:    chain.NewStore(chainPath),
		sessions: session.NewManager(cfg.SessionsPath, nil, nil),
		gen:      generate.NewGenerator(nil, nil, generate.DescribeWorkspace(cfg.WorkspacePath)),
		out:      os.Stdout,
		now:      time.Now,
	}
}

// Run dispatches the parsed command. The exit code is always zero: the
// chain is a best-effort courtesy between runs, and a failed run should
// never break the caller's scripting.
func (a *App) Run(cmd Command, args Args) int {
	switch cmd {
	case CmdShow:
		a.runShow(args)
	case CmdSearch:
		a.runSearch(args)
	case CmdHistory:
		a.runHistory(args)
	case CmdSessions:
		a.runSessions(args)
	case CmdNote:
		a.runNote(args)
	case CmdStats:
		a.runStats(args)
	case CmdExport:
		a.runExport(args)
	case CmdVersion:
		a.runVersion(args)
	case CmdHelp:
		a.PrintUsage()
	default:
		a.runRelay(args)
	}
	return 0
}

// =============================================================================
// APPEND (default command)
// =============================================================================

func (a *App) runRelay(args Args) {
	entries := a.store.Load()

	reg := a.sessions.Load()
	sess, err := a.sessions.ResumeOrCreate(reg)
	if err != nil {
		// Session tracking is advisory; the chain still grows.
		fmt.Fprintln(a.out, DimStyle.Render("session tracking unavailable: "+err.Error()))
	}

	message := args.Message
	if message == "" {
		message = a.gen.Generate(entries)
	}

	sessionNum := 0
	messageNum := 0
	if sess != nil {
		sessionNum = sess.Number
		messageNum = sess.MessageCount
	}

	updated, entry, err := a.store.Append(entries, a.now(), message, sessionNum)
	if err != nil {
		a.fail(args, "relay", err)
		return
	}

	if args.JSON {
		data := RelayData{
			Entry:       entry,
			ChainLength: len(updated),
			Session:     sessionNum,
			MessageNum:  messageNum,
			StoredAt:    a.store.Path(),
		}
		_ = NewJSONResponse("relay", data).PrintTo(a.out)
		return
	}

	fmt.Fprintln(a.out, TitleStyle.Render("--- recent chain ---"))
	a.displayEntries(query.Tail(updated, 3))
	fmt.Fprintf(a.out, "%s %d\n", LabelStyle.Render("chain length:"), len(updated))
	if sess != nil {
		fmt.Fprintf(a.out, "%s %d (message #%d in this session)\n",
			LabelStyle.Render("session:"), sess.Number, sess.MessageCount)
	}
	fmt.Fprintf(a.out, "%s %s\n", LabelStyle.Render("stored at:"), a.store.Path())
}

// =============================================================================
// SHOW / SEARCH / HISTORY
// =============================================================================

func (a *App) runShow(args Args) {
	entries := a.store.Load()
	shown := entries
	if args.Last > 0 {
		shown = query.Tail(entries, args.Last)
	}

	if args.JSON {
		_ = NewJSONResponse("show", ShowData{Entries: shown, Total: len(entries)}).PrintTo(a.out)
		return
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, DimStyle.Render("the chain is empty. nothing has been relayed yet."))
		return
	}
	a.displayEntries(shown)
}

func (a *App) runSearch(args Args) {
	if args.SearchTerm == "" {
		if args.JSON {
			_ = NewJSONErrorResponse("search", fmt.Errorf("need a term to search for")).PrintTo(a.out)
			return
		}
		fmt.Fprintln(a.out, "usage: relay --search <term>")
		return
	}

	entries := a.store.Load()
	matches := query.Search(entries, args.SearchTerm, DefaultSearchLimit)

	if args.JSON {
		_ = NewJSONResponse("search", SearchData{Term: args.SearchTerm, Matches: matches}).PrintTo(a.out)
		return
	}

	if len(matches) == 0 {
		fmt.Fprintf(a.out, "no messages matching %q\n", args.SearchTerm)
		return
	}
	fmt.Fprintln(a.out, TitleStyle.Render(fmt.Sprintf("messages matching %q (newest first)", args.SearchTerm)))
	fmt.Fprintln(a.out)
	a.displayEntries(matches)
}

func (a *App) runHistory(args Args) {
	entries := a.store.Load()
	byDate := query.GroupByDate(entries)
	bySession := query.GroupBySession(entries)

	if args.JSON {
		_ = NewJSONResponse("history", HistoryData{ByDate: byDate, BySession: bySession}).PrintTo(a.out)
		return
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, DimStyle.Render("the chain is empty. nothing has been relayed yet."))
		return
	}

	fmt.Fprintln(a.out, TitleStyle.Render("chain history"))
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, "by day:")
	for _, day := range query.Dates(byDate) {
		fmt.Fprintf(a.out, "  %s  %d message%s\n",
			day, len(byDate[day]), plural(len(byDate[day])))
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, "by session:")
	for _, num := range query.SessionNumbers(bySession) {
		if num == 0 {
			fmt.Fprintln(a.out, DimStyle.Render("  before session tracking"))
		} else {
			fmt.Fprintf(a.out, "  session %d\n", num)
		}
		for _, e := range bySession[num] {
			fmt.Fprintf(a.out, "    %s %s\n",
				RunStyle.Render(fmt.Sprintf("[%d]", e.Run)),
				MessageStyle.Render(e.Message))
		}
	}
}

// =============================================================================
// SESSIONS / NOTES / STATS
// =============================================================================

const (
	sessionNoteLimit = 3
	noteDisplayWidth = 50
)

func (a *App) runSessions(args Args) {
	reg := a.sessions.Load()
	stats := session.ComputeStats(reg)

	if args.JSON {
		_ = NewJSONResponse("sessions", SessionsData{Sessions: reg.Sessions, Stats: stats}).PrintTo(a.out)
		return
	}

	if reg.Len() == 0 {
		fmt.Fprintln(a.out, DimStyle.Render("no sessions recorded yet"))
		return
	}

	fmt.Fprintln(a.out, RenderSeparator("=", 50))
	fmt.Fprintln(a.out, TitleStyle.Render(" SESSION HISTORY"))
	fmt.Fprintln(a.out, RenderSeparator("=", 50))
	fmt.Fprintln(a.out)

	for _, s := range reg.Sessions {
		fmt.Fprintf(a.out, "Session %d\n", s.Number)
		fmt.Fprintf(a.out, "  %s %s\n", LabelStyle.Render("started:"), s.Started.Format(model.TimeFormat))
		fmt.Fprintf(a.out, "  %s %s\n", LabelStyle.Render("last active:"), s.LastActive.Format(model.TimeFormat))
		fmt.Fprintf(a.out, "  %s %d\n", LabelStyle.Render("messages:"), s.MessageCount)
		if len(s.Notes) > 0 {
			fmt.Fprintln(a.out, "  notes:")
			shown := s.Notes
			if len(shown) > sessionNoteLimit {
				shown = shown[:sessionNoteLimit]
			}
			for _, n := range shown {
				fmt.Fprintf(a.out, "    - %s\n", truncateNote(n.Text))
			}
			if extra := len(s.Notes) - sessionNoteLimit; extra > 0 {
				fmt.Fprintln(a.out, DimStyle.Render(fmt.Sprintf("    ... and %d more", extra)))
			}
		}
		fmt.Fprintln(a.out)
	}

	fmt.Fprintln(a.out, RenderSeparator("-", 50))
	fmt.Fprintf(a.out, "Total sessions: %d\n", stats.TotalSessions)
	fmt.Fprintf(a.out, "Total messages across all sessions: %d\n", stats.TotalMessages)
}

func (a *App) runNote(args Args) {
	if args.Note == "" {
		if args.JSON {
			_ = NewJSONErrorResponse("note", fmt.Errorf("need a note to add")).PrintTo(a.out)
			return
		}
		fmt.Fprintln(a.out, ErrorStyle.Render("need a note to add"))
		return
	}

	reg := a.sessions.Load()

	// Make sure a session exists before attaching the note to it.
	sess, err := a.sessions.ResumeOrCreate(reg)
	if err != nil {
		a.fail(args, "note", err)
		return
	}

	ok, err := a.sessions.AddNote(reg, args.Note)
	if err != nil {
		a.fail(args, "note", err)
		return
	}
	if !ok {
		a.fail(args, "note", fmt.Errorf("no current session to attach the note to"))
		return
	}

	if args.JSON {
		_ = NewJSONResponse("note", NoteData{Note: args.Note, Session: sess.Number}).PrintTo(a.out)
		return
	}
	fmt.Fprintf(a.out, "%s %s\n", SuccessStyle.Render("note added:"), args.Note)
}

func (a *App) runStats(args Args) {
	reg := a.sessions.Load()
	sessionStats := session.ComputeStats(reg)
	chainStats := query.ChainStatistics(a.store.Load())

	if args.JSON {
		_ = NewJSONResponse("stats", StatsData{Sessions: sessionStats, Chain: chainStats}).PrintTo(a.out)
		return
	}

	fmt.Fprintln(a.out, TitleStyle.Render("relay statistics:"))
	fmt.Fprintf(a.out, "  %s %d\n", LabelStyle.Render("sessions:"), sessionStats.TotalSessions)
	fmt.Fprintf(a.out, "  %s %d\n", LabelStyle.Render("messages:"), sessionStats.TotalMessages)
	if sessionStats.FirstSession != nil {
		fmt.Fprintf(a.out, "  %s %s\n", LabelStyle.Render("first session:"),
			sessionStats.FirstSession.Format(model.TimeFormat))
	}
	if sessionStats.LastSession != nil {
		fmt.Fprintf(a.out, "  %s %s\n", LabelStyle.Render("last session:"),
			sessionStats.LastSession.Format(model.TimeFormat))
	}

	if chainStats.Count == 0 {
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, TitleStyle.Render("chain statistics:"))
	fmt.Fprintf(a.out, "  %s %d\n", LabelStyle.Render("entries:"), chainStats.Count)
	fmt.Fprintf(a.out, "  %s %s\n", LabelStyle.Render("first entry:"), chainStats.First)
	fmt.Fprintf(a.out, "  %s %s\n", LabelStyle.Render("last entry:"), chainStats.Last)
	fmt.Fprintf(a.out, "  %s %.1f characters\n", LabelStyle.Render("average message:"), chainStats.AvgLength)
	if len(chainStats.TopWords) > 0 {
		fmt.Fprintln(a.out, "  top words:")
		for _, wc := range chainStats.TopWords {
			fmt.Fprintf(a.out, "    %s (%d)\n", wc.Word, wc.Count)
		}
	}
}

// =============================================================================
// EXPORT / VERSION
// =============================================================================

func (a *App) runExport(args Args) {
	format := args.ExportFormat
	if format == "" {
		format = "md"
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		a.fail(args, "export", err)
		return
	}

	entries := a.store.Load()
	doc := export.BuildDocument(entries, a.sessions.Load(), a.now())
	if err := exporter.Export(doc, args.ExportPath); err != nil {
		a.fail(args, "export", err)
		return
	}

	if args.JSON {
		data := ExportData{
			ID:      doc.ID,
			Path:    args.ExportPath,
			Format:  exporter.Extension(),
			Entries: len(entries),
		}
		_ = NewJSONResponse("export", data).PrintTo(a.out)
		return
	}
	fmt.Fprintf(a.out, "%s %d entries to %s\n", SuccessStyle.Render("exported"), len(entries), args.ExportPath)
	fmt.Fprintln(a.out, DimStyle.Render("export id: "+doc.ID))
}

func (a *App) runVersion(args Args) {
	if args.JSON {
		data := VersionData{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
		_ = NewJSONResponse("version", data).PrintTo(a.out)
		return
	}
	fmt.Fprintf(a.out, "relay version %s\n", Version)
	fmt.Fprintf(a.out, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(a.out, "  Build date: %s\n", BuildDate)
}

// =============================================================================
// RENDERING HELPERS
// =============================================================================

// displayEntries prints entries in the classic chain format:
//
//	[3] (2025-03-01 10:00:00)
//	    the chain is 2 long now. i add: the pattern continues.
func (a *App) displayEntries(entries []model.Entry) {
	width := GetTerminalWidth() - 6
	for _, e := range entries {
		fmt.Fprintf(a.out, "%s %s\n",
			RunStyle.Render(fmt.Sprintf("[%d]", e.Run)),
			TimeStyle.Render("("+e.Time+")"))
		for _, line := range util.Wrap(e.Message, width) {
			fmt.Fprintf(a.out, "    %s\n", MessageStyle.Render(line))
		}
		fmt.Fprintln(a.out)
	}
}

func (a *App) fail(args Args, command string, err error) {
	if args.JSON {
		_ = NewJSONErrorResponse(command, err).PrintTo(a.out)
		return
	}
	fmt.Fprintf(a.out, "%s %s\n", ErrorStyle.Render("relay:"), err.Error())
}

func truncateNote(text string) string {
	return util.Truncate(text, noteDisplayWidth)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
