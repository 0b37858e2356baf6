package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Renderer writes command results in the configured output format.
type Renderer struct {
	w     io.Writer
	mode  string
	isTTY bool
}

// NewRenderer creates a renderer for mode, detecting whether w is a terminal.
func NewRenderer(w io.Writer, mode string) *Renderer {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
	}
	return NewRendererWithTTY(w, mode, tty)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(w io.Writer, mode string, isTTY bool) *Renderer {
	return &Renderer{w: w, mode: mode, isTTY: isTTY}
}

// Mode resolves "auto": text on a terminal, markdown otherwise.
func (r *Renderer) Mode() string {
	switch r.mode {
	case "", "auto":
		if r.isTTY {
			return "text"
		}
		return "markdown"
	default:
		return r.mode
	}
}

// Table renders rows under headers.
func (r *Renderer) Table(headers []string, rows [][]string) error {
	switch r.Mode() {
	case "json":
		out := make([]map[string]string, len(rows))
		for i, row := range rows {
			m := make(map[string]string, len(headers))
			for j, h := range headers {
				if j < len(row) {
					m[strings.ToLower(h)] = row[j]
				}
			}
			out[i] = m
		}
		return r.JSON(out)
	case "markdown":
		return r.table(headers, rows, true)
	default:
		return r.table(headers, rows, false)
	}
}

func (r *Renderer) table(headers []string, rows [][]string, markdown bool) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)

	// Header
	headerRow := make(table.Row, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	// Rows
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	if markdown {
		t.RenderMarkdown()
		return nil
	}
	t.Render()
	_, _ = fmt.Fprintf(r.w, "(%d rows)\n", len(rows))
	return nil
}

// Record renders one record: YAML for people, JSON for machines.
func (r *Renderer) Record(v any) error {
	if r.Mode() == "json" {
		return r.JSON(v)
	}
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Println writes a plain line.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}
