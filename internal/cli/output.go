package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/pagination"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// CallsListResult is the structured output of calls list.
type CallsListResult struct {
	Calls      []calls.DisplayRecord     `json:"calls"      yaml:"calls"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (use table, json or yaml)", ErrUnsupportedOutput, format)
	}
}

// renderStructured writes v as indented JSON or YAML.
func renderStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
}

// renderCallsList writes one page of calls in the requested format.
func renderCallsList(w io.Writer, format string, result CallsListResult) error {
	if format != outputTable {
		return renderStructured(w, format, result)
	}

	if len(result.Calls) == 0 {
		_, _ = fmt.Fprintln(w, "No calls on this page.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		_, _ = fmt.Fprintln(tw, "\tTITLE\tPARTY\tDURATION\tDATE\tNOTES\tID")
		for _, d := range result.Calls {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				iconText(d.IconKind), d.Title, d.Subtitle, d.DurationText, d.DateText, d.NoteSummary, d.ID)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if pagination.ShowControl(result.Pagination.RecordsTotalCount) {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, paginationSummary(result.Pagination))
	}
	return nil
}

// paginationSummary renders "Page 2 of 4 · 25 per page · 1,204 calls".
func paginationSummary(meta pagination.PaginationMeta) string {
	p := message.NewPrinter(language.English)
	return strings.Join([]string{
		p.Sprintf("Page %d of %d", meta.CurrentPage, meta.TotalPages),
		p.Sprintf("%d per page", meta.PageSize),
		p.Sprintf("%d calls", meta.RecordsTotalCount),
	}, " · ")
}

// renderCall writes a single call in the requested format.
func renderCall(w io.Writer, format string, record calls.CallRecord, f calls.Formatter) error {
	if format != outputTable {
		return renderStructured(w, format, record)
	}

	d := calls.Project(record, f)
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	rows := [][2]string{
		{"ID", record.ID},
		{"Title", iconText(d.IconKind) + " " + d.Title},
		{"Direction", string(record.Direction)},
		{"From", record.From},
		{"To", record.To},
		{"Via", record.Via},
		{"Duration", d.DurationText},
		{"Date", d.DateText},
		{"Archived", strconv.FormatBool(record.IsArchived)},
	}
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", row[0], value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if d.HasNoteSummary() {
		_, _ = fmt.Fprintf(w, "\n%s\n", d.NoteSummary)
		for _, n := range record.Notes {
			_, _ = fmt.Fprintf(w, "  - %s\n", n.Content)
		}
	}
	return nil
}

func iconText(kind calls.IconKind) string {
	if kind == calls.IconUp {
		return "↗"
	}
	return "↙"
}
