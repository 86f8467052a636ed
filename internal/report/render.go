package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
)

// RenderTable writes the full result set to w as a bordered table.
func RenderTable(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Header())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		table.Append(r.Strings())
	}
	table.Render()
}

// WriteCSV writes the same rows, same column order, to path with a header
// row, creating parent directories as needed.
func WriteCSV(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		f.Close()
		return fmt.Errorf("write report header: %w", err)
	}
	for i, r := range rows {
		if err := w.Write(r.Strings()); err != nil {
			f.Close()
			return fmt.Errorf("write report row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}
