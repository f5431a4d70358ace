package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/hyperfocus/hyperfocus/internal/logging"
)

// Opener opens files in the user's editor and waits for it to exit
type Opener struct {
	stderr *os.File
	stdin  *os.File
	stdout *os.File
}

// NewOpener creates an opener attached to the current terminal
func NewOpener() *Opener {
	return &Opener{stderr: os.Stderr, stdin: os.Stdin, stdout: os.Stdout}
}

// Open edits path and blocks until the editor exits.
// Priority: cliEditor → $HYPERFOCUS_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(ctx context.Context, path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := findEditor(path, cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $HYPERFOCUS_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.CommandContext(ctx, editor, args...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

func findEditor(path string, cliEditor string) (string, []string) {
	if cliEditor != "" {
		return cliEditor, []string{path}
	}

	for _, env := range []string{"HYPERFOCUS_EDITOR", "VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, []string{path}
		}
	}

	return findPlatformEditor(path)
}
