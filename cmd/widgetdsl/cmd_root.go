package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-widgetdsl/pkg/surface"
)

type globalFlags struct {
	config  string
	verbose bool
}

// surfaceFactory builds the edit surface for the --ui flag value.
type surfaceFactory func(ui string) (surface.Surface, error)

func terminalSurface(ui string) (surface.Surface, error) {
	switch ui {
	case "", "survey":
		return surface.NewSurvey(), nil
	case "tea":
		return surface.NewTea(), nil
	default:
		return nil, fmt.Errorf("unknown ui %q (want survey or tea)", ui)
	}
}

// newRootCmd assembles the command tree. newSurface may be nil, in which case
// the edit command prompts on the terminal.
func newRootCmd(std streams, newSurface surfaceFactory) *cobra.Command {
	flags := &globalFlags{}
	if newSurface == nil {
		newSurface = terminalSurface
	}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Compile widget DSL source into previews and data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(std.in)
	root.SetOut(std.out)
	root.SetErr(std.err)

	root.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default ./widgetdsl.yaml or ~/.config/widgetdsl/widgetdsl.yaml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCompileCmd(flags, std),
		newKindsCmd(flags, std),
		newSchemaCmd(flags, std),
		newEditCmd(flags, std, newSurface),
	)
	return root
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
