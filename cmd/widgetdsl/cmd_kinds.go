package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
)

func newKindsCmd(flags *globalFlags, std streams) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the widget kinds the grammar recognises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, std)
			if err != nil {
				return err
			}
			entries := a.grammar.Entries()
			if asJSON {
				enc := json.NewEncoder(std.out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			_, err = fmt.Fprintln(std.out, kindsTable(entries))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the grammar entries as JSON")
	return cmd
}

func kindsTable(entries []grammar.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		fields := make([]string, 0, len(entry.Fields))
		for _, field := range entry.Fields {
			fields = append(fields, field.Name+":"+string(field.Type))
		}
		resizable := ""
		if entry.Resizable {
			resizable = "yes"
		}
		rows = append(rows, []string{entry.Kind, strings.Join(fields, " "), resizable})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KIND", "FIELDS", "RESIZABLE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
