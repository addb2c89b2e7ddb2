// Package surface captures raw DSL text from a user and feeds every change to
// the compile pipeline. Each change replaces the previous document wholesale.
package surface

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("surface: aborted")
)

// Prompt configures a multi-line text capture.
type Prompt struct {
	Message string
	Default string
	Help    string
}

// Surface abstracts the text-entry implementation so the edit loop can be
// tested without a terminal.
type Surface interface {
	Read(ctx context.Context, prompt Prompt) (string, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

// ChangeFunc receives the complete source text after each edit.
type ChangeFunc func(ctx context.Context, source string) error

// LoopConfig tunes the prompts shown by Loop.
type LoopConfig struct {
	Message  string
	Help     string
	Continue string
	Initial  string
}

func (c LoopConfig) withDefaults() LoopConfig {
	if strings.TrimSpace(c.Message) == "" {
		c.Message = "Widget source"
	}
	if strings.TrimSpace(c.Help) == "" {
		c.Help = `One declaration per widget, e.g. Button { text: "OK"; width: "100"; height: "40"; }`
	}
	if strings.TrimSpace(c.Continue) == "" {
		c.Continue = "Edit again?"
	}
	return c
}

// Loop reads source text, hands it to onChange and asks whether to continue.
// The previous text is offered as the default of the next read. Loop returns
// nil when the user declines or aborts, and the first onChange error otherwise.
func Loop(ctx context.Context, s Surface, cfg LoopConfig, onChange ChangeFunc) error {
	if s == nil {
		return errors.New("surface: nil surface")
	}
	if onChange == nil {
		return errors.New("surface: nil change handler")
	}
	cfg = cfg.withDefaults()

	current := cfg.Initial
	for {
		source, err := s.Read(ctx, Prompt{Message: cfg.Message, Default: current, Help: cfg.Help})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("surface: read source: %w", err)
		}
		current = source

		if err := onChange(ctx, source); err != nil {
			return err
		}

		again, err := s.Confirm(ctx, cfg.Continue, true)
		if errors.Is(err, ErrAborted) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("surface: confirm: %w", err)
		}
	}
}
