package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/polka/internal/adapters/editor"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/markdown"
)

// NotesCmd reads and writes session notes
type NotesCmd struct {
	Edit  NotesEditCmd  `cmd:"edit" help:"Edit the notes of a session in an external editor"`
	Show  NotesShowCmd  `cmd:"show" help:"Print the notes of a session" default:"1"`
	Write NotesWriteCmd `cmd:"write" help:"Replace the notes of a session"`
}

// NotesShowCmd prints notes as markdown or HTML
type NotesShowCmd struct {
	HTML bool   `help:"Render the markdown to a standalone HTML document" name:"html"`
	ID   string `arg:"" help:"Session ID"`
}

// Run executes the show command
func (n *NotesShowCmd) Run(container *Container) error {
	md, err := container.Client.ReadNotes(context.Background(), n.ID)
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	if !n.HTML {
		fmt.Print(md)
		return nil
	}

	title := n.ID
	if session, ok := findSession(container, n.ID); ok {
		title = session.DisplayTitle()
	}
	doc, err := markdown.RenderDocument(title, md)
	if err != nil {
		return fmt.Errorf("failed to render notes: %w", err)
	}
	fmt.Print(doc)
	return nil
}

// NotesWriteCmd replaces notes from a file or stdin
type NotesWriteCmd struct {
	File string `help:"Read the notes from this file instead of stdin" short:"f" type:"existingfile"`
	ID   string `arg:"" help:"Session ID"`
}

// Run executes the write command
func (n *NotesWriteCmd) Run(container *Container) error {
	var (
		data []byte
		err  error
	)
	if n.File != "" {
		data, err = os.ReadFile(n.File)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read notes input: %w", err)
	}

	logging.Logger.Info("Executing notes write command", "session_id", n.ID, "bytes", len(data))
	if err := container.Client.WriteNotes(context.Background(), n.ID, string(data)); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}

	fmt.Printf("Notes of '%s' saved (%d bytes)\n", n.ID, len(data))
	return nil
}

// NotesEditCmd opens the notes in an external editor and saves the result
type NotesEditCmd struct {
	Editor string `help:"Editor command (overrides $POLKA_EDITOR, $VISUAL, $EDITOR)"`
	ID     string `arg:"" help:"Session ID"`
}

// Run executes the edit command
func (n *NotesEditCmd) Run(cli *CLI, container *Container) error {
	ctx := context.Background()

	md, err := container.Client.ReadNotes(ctx, n.ID)
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	ed := editor.New(n.editorCommand(cli))
	logging.Logger.Info("Executing notes edit command", "session_id", n.ID, "editor", ed.Command())

	edited, err := ed.Edit(ctx, n.ID, md)
	if err != nil {
		return err
	}
	if edited == md {
		fmt.Printf("Notes of '%s' unchanged\n", n.ID)
		return nil
	}

	if err := container.Client.WriteNotes(ctx, n.ID, edited); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	fmt.Printf("Notes of '%s' saved (%d bytes)\n", n.ID, len(edited))
	return nil
}

// editorCommand applies flag > $POLKA_EDITOR > settings.json; the editor
// package handles the remaining fallbacks
func (n *NotesEditCmd) editorCommand(cli *CLI) string {
	if n.Editor != "" {
		return n.Editor
	}
	if _, hasEnv := os.LookupEnv("POLKA_EDITOR"); hasEnv {
		return ""
	}
	return cli.Settings().Editor
}
