package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Options(tablewriter.WithHeader(header))

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
