package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/joshuapare/policyvec/internal/scenario"
)

func render(w io.Writer, format string, reports ...*scenario.Report) error {
	if format == "json" {
		return renderJSON(w, reports)
	}
	for _, r := range reports {
		renderTable(w, r)
	}
	return nil
}

func renderTable(w io.Writer, r *scenario.Report) {
	_, _ = fmt.Fprintf(w, "%s: allocator=%s lock=%s tracer=%s\n",
		r.Scenario, r.Policies.Allocator, r.Policies.Lock, r.Policies.Tracer)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Step", "Result"})
	for _, s := range r.Steps {
		t.AppendRow(table.Row{s.Name, s.Result})
	}
	t.AppendFooter(table.Row{"allocs/frees", fmt.Sprintf("%d/%d (live %d bytes)", r.Alloc.Allocs, r.Alloc.Frees, r.Alloc.LiveBytes)})
	t.Render()

	for _, ev := range r.Events {
		_, _ = fmt.Fprintln(w, "  "+ev)
	}
}

func renderJSON(w io.Writer, reports []*scenario.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}
