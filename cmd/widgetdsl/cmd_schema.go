package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
)

func newSchemaCmd(flags *globalFlags, std streams) *cobra.Command {
	var (
		format  string
		version string
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI components describing compiled documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, std)
			if err != nil {
				return err
			}
			doc := grammar.OpenAPIDocument(a.grammar, version)
			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			switch format {
			case "json":
				_, err = fmt.Fprintln(std.out, string(raw))
				return err
			case "yaml":
				var tree any
				if err := json.Unmarshal(raw, &tree); err != nil {
					return fmt.Errorf("convert schema: %w", err)
				}
				enc := yaml.NewEncoder(std.out)
				enc.SetIndent(2)
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode schema: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&version, "version", "1.0.0", "info.version of the generated document")
	return cmd
}
