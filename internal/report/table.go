package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects how a Table is rendered.
type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts the names used on the command line.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatCSV, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// Table is a header plus rows of preformatted cells. Row order is preserved as given.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len is the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Render writes the table to w.
func (t Table) Render(w io.Writer, f Format) error {
	switch f {
	case FormatCSV:
		return t.writeCSV(w)
	case FormatTable, FormatMarkdown:
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(toRow(t.Header))
		for _, r := range t.Rows {
			tw.AppendRow(toRow(r))
		}
		if f == FormatMarkdown {
			tw.RenderMarkdown()
			return nil
		}
		tw.SetStyle(table.StyleRounded)
		tw.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// writeCSV emits RFC 4180 output for files the dashboard reads.
func (t Table) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
