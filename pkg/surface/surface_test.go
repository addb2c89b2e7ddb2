package surface

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
)

type scriptedSurface struct {
	reads    []string
	readErr  error
	answers  []bool
	prompts  []Prompt
	confirms int
}

func (s *scriptedSurface) Read(_ context.Context, prompt Prompt) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.reads) == 0 {
		if s.readErr != nil {
			return "", s.readErr
		}
		return "", ErrAborted
	}
	next := s.reads[0]
	s.reads = s.reads[1:]
	return next, nil
}

func (s *scriptedSurface) Confirm(context.Context, string, bool) (bool, error) {
	s.confirms++
	if len(s.answers) == 0 {
		return false, nil
	}
	next := s.answers[0]
	s.answers = s.answers[1:]
	return next, nil
}

func TestLoop_ReplacesSourceEachEdit(t *testing.T) {
	s := &scriptedSurface{
		reads:   []string{`Button { text: "A"; width: "1"; height: "1"; }`, `Label { text: "B"; }`},
		answers: []bool{true, false},
	}
	var seen []string
	err := Loop(context.Background(), s, LoopConfig{Initial: "Footer { text: \"x\"; }"}, func(_ context.Context, source string) error {
		seen = append(seen, source)
		return nil
	})
	if err != nil {
		t.Fatalf("loop: %v", err)
	}
	want := []string{`Button { text: "A"; width: "1"; height: "1"; }`, `Label { text: "B"; }`}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	if s.prompts[0].Default != `Footer { text: "x"; }` {
		t.Fatalf("expected initial default, got %q", s.prompts[0].Default)
	}
	if s.prompts[1].Default != want[0] {
		t.Fatalf("expected previous source as default, got %q", s.prompts[1].Default)
	}
	if s.prompts[0].Message != "Widget source" {
		t.Fatalf("expected default message, got %q", s.prompts[0].Message)
	}
}

func TestLoop_AbortIsClean(t *testing.T) {
	s := &scriptedSurface{}
	called := false
	err := Loop(context.Background(), s, LoopConfig{}, func(context.Context, string) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("expected nil on abort, got %v", err)
	}
	if called {
		t.Fatalf("onChange must not run after abort")
	}
}

func TestLoop_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	s := &scriptedSurface{reads: []string{"x"}, answers: []bool{true}}
	err := Loop(context.Background(), s, LoopConfig{}, func(context.Context, string) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}

	s = &scriptedSurface{readErr: boom}
	err = Loop(context.Background(), s, LoopConfig{}, func(context.Context, string) error { return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}

	if err := Loop(context.Background(), nil, LoopConfig{}, func(context.Context, string) error { return nil }); err == nil {
		t.Fatalf("expected error for nil surface")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if !errors.Is(translateSurveyErr(terminal.InterruptErr), ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted")
	}
	other := errors.New("other")
	if translateSurveyErr(other) != other {
		t.Fatalf("other errors pass through")
	}
}

func TestSurveySurface_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSurvey()
	if _, err := s.Read(ctx, Prompt{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := s.Confirm(ctx, "x", true); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
