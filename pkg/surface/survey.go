package surface

import (
	"context"
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyOption configures the survey-backed surface.
type SurveyOption func(*surveySurface)

// WithStdio routes prompts through the given streams instead of the process
// terminal.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(s *surveySurface) {
		s.askOpts = append(s.askOpts, survey.WithStdio(in, out, errOut))
	}
}

type surveySurface struct {
	askOpts []survey.AskOpt
}

// NewSurvey returns a Surface that prompts on the terminal with survey.
func NewSurvey(options ...SurveyOption) Surface {
	s := &surveySurface{}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *surveySurface) Read(ctx context.Context, prompt Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Multiline{
		Message: prompt.Message,
		Default: prompt.Default,
		Help:    prompt.Help,
	}
	if err := survey.AskOne(q, &out, s.askOpts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (s *surveySurface) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	q := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(q, &out, s.askOpts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
