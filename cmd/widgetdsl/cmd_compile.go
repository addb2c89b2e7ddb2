package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-widgetdsl/pkg/orchestrator"
	"github.com/goliatone/go-widgetdsl/pkg/render"
)

type renderFlags struct {
	renderer string
	output   string
	title    string
	fragment bool
	theme    string
	variant  string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.renderer, "renderer", "r", "", "renderer to use: html, json, yaml or term (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&f.title, "title", "", "page title for the html renderer")
	cmd.Flags().BoolVar(&f.fragment, "fragment", false, "emit only the widget markup without the page shell")
	cmd.Flags().StringVar(&f.theme, "theme", "", "theme name (default from config)")
	cmd.Flags().StringVar(&f.variant, "variant", "", "theme variant (default from config)")
}

func (f *renderFlags) request(source string) orchestrator.Request {
	return orchestrator.Request{
		Source:       source,
		Renderer:     f.renderer,
		ThemeName:    f.theme,
		ThemeVariant: f.variant,
		RenderOptions: render.RenderOptions{
			Title:    f.title,
			Fragment: f.fragment,
		},
	}
}

func newCompileCmd(flags *globalFlags, std streams) *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "compile [file|-]",
		Short: "Compile DSL source and render it",
		Long:  "Compile DSL source read from a file (or stdin when the argument is - or missing) and write the rendered output.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, std)
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			source, err := readSource(path, std.in)
			if err != nil {
				return err
			}
			out, err := a.orch.Generate(cmd.Context(), rf.request(source))
			if err != nil {
				return err
			}
			return writeOutput(rf.output, out, std.out)
		},
	}
	rf.register(cmd)
	return cmd
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
