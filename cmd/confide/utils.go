package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// formatTimestamp converts Unix milliseconds to local wall-clock time.
func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

func printEntry(e moods.MoodEntry) {
	out := color.Output
	fmt.Fprintf(out, "%s %s  %s\n", e.Mood.Emoji, bold(e.Mood.Label), faint(formatTimestamp(e.Timestamp)))
	fmt.Fprintf(out, "%s %s\n", faint("ID:"), e.ID)
	fmt.Fprintln(out, "------------------------------------------------------------")
	fmt.Fprintln(out, e.Content)
	fmt.Fprintln(out, "------------------------------------------------------------")
	fmt.Fprintf(out, "%s\n%s\n", cyan(e.ResponseStyle.Name+":"), e.AIResponse)
}

func printEntrySummary(e moods.MoodEntry) {
	ts := time.UnixMilli(e.Timestamp).Local().Format("15:04")
	fmt.Fprintf(color.Output, "  %s %s %s  %s\n", faint(ts), e.Mood.Emoji, moods.Truncate(e.Content, 40), faint(e.ID))
}

func printDateHeader(date string) {
	fmt.Fprintln(color.Output, bold(date))
}

func printQuote(q moods.DailyQuote) {
	heart := "♡"
	if q.Liked {
		heart = red("♥")
	}
	fmt.Fprintf(color.Output, "%s %s\n", heart, bold(q.Content))
	if q.Author != "" {
		fmt.Fprintf(color.Output, "  -- %s\n", q.Author)
	}
	fmt.Fprintf(color.Output, "%s %s  %s %s\n", faint("Date:"), q.Date, faint("ID:"), q.ID)
}

func printStyle(s moods.ResponseStyle) {
	fmt.Fprintf(color.Output, "%s (%s)\n  %s\n", bold(s.Name), s.Value, s.Description)
}

func printMoodCounts(counts []diary.MoodCount) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Mood"), bold("Entries"))
	for _, c := range counts {
		tbl.AddRow(c.Mood.Emoji+" "+c.Mood.Label, c.Count)
	}
	fmt.Fprintln(color.Output, tbl)
}

func printWarning(err error) {
	fmt.Fprintln(color.Error, yellow("Warning: "+err.Error()))
}
