package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-widgetdsl/pkg/surface"
)

func newEditCmd(flags *globalFlags, std streams, newSurface surfaceFactory) *cobra.Command {
	rf := &renderFlags{}
	var (
		initial string
		ui      string
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit DSL source interactively and re-render on every change",
		Long: "Prompts for DSL source, renders it and asks whether to keep editing. " +
			"Each edit replaces the previous output entirely.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, std)
			if err != nil {
				return err
			}
			seed := ""
			if initial != "" {
				if seed, err = readSource(initial, std.in); err != nil {
					return err
				}
			}
			s, err := newSurface(ui)
			if err != nil {
				return err
			}
			return surface.Loop(cmd.Context(), s, surface.LoopConfig{Initial: seed},
				func(ctx context.Context, source string) error {
					out, err := a.orch.Generate(ctx, rf.request(source))
					if err != nil {
						return err
					}
					if err := writeOutput(rf.output, out, std.out); err != nil {
						return err
					}
					if rf.output != "" {
						a.logger.Info("preview updated", "path", rf.output, "bytes", len(out))
					}
					return nil
				})
		},
	}
	rf.register(cmd)
	cmd.Flags().StringVar(&initial, "from", "", "seed the editor with the contents of this file")
	cmd.Flags().StringVar(&ui, "ui", "survey", "editor surface: survey (prompt) or tea (full screen)")
	return cmd
}
