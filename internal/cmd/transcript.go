package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
)

// TranscriptCmd reads and appends transcript lines
type TranscriptCmd struct {
	Append TranscriptAppendCmd `cmd:"append" help:"Append a line to the transcript of a session"`
	Show   TranscriptShowCmd   `cmd:"show" help:"Print the transcript of a session" default:"1"`
}

// TranscriptShowCmd prints a transcript
type TranscriptShowCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	ID     string `arg:"" help:"Session ID"`
}

// Run executes the show command
func (t *TranscriptShowCmd) Run(container *Container) error {
	lines, err := container.Client.ReadTranscript(context.Background(), t.ID)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	if t.Format == "json" {
		return printJSON(os.Stdout, lines)
	}
	printTranscript(os.Stdout, lines)
	return nil
}

func printTranscript(out io.Writer, lines []domain.TranscriptLine) {
	for i, line := range lines {
		view := line.View(i)
		if view.Speaker != "" {
			fmt.Fprintf(out, "[%s] %s: %s\n", domain.FormatTimestamp(view.Timestamp), view.Speaker, view.Text)
		} else {
			fmt.Fprintf(out, "[%s] %s\n", domain.FormatTimestamp(view.Timestamp), view.Text)
		}
	}
}

// TranscriptAppendCmd appends one line
type TranscriptAppendCmd struct {
	ID      string   `arg:"" help:"Session ID"`
	Speaker string   `help:"Who is speaking"`
	TMs     uint64   `help:"Offset of the line from the start of the recording, in milliseconds" name:"t-ms" default:"0"`
	Text    []string `arg:"" help:"Text of the line"`
}

// Run executes the append command
func (t *TranscriptAppendCmd) Run(container *Container) error {
	line := domain.TranscriptLine{
		Speaker: t.Speaker,
		TMs:     t.TMs,
		Text:    strings.Join(t.Text, " "),
	}

	logging.Logger.Info("Executing transcript append command", "session_id", t.ID, "t_ms", line.TMs)
	if err := container.Client.AppendTranscriptLine(context.Background(), t.ID, line); err != nil {
		return fmt.Errorf("failed to append transcript line: %w", err)
	}

	fmt.Printf("Appended line at %s to '%s'\n", domain.FormatTimestamp(line.TMs/1000), t.ID)
	return nil
}
