// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode accepts "ascii" (or "") and "markdown" (or "md"), case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("report: unknown format %q", s)
	}
}

func (m Mode) String() string {
	if m == Markdown {
		return "markdown"
	}

	return "ascii"
}

// grid is a thin builder over go-pretty's table.Writer.
type grid struct {
	w    table.Writer
	mode Mode
}

func newGrid(m Mode) *grid {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	return &grid{w: w, mode: m}
}

func (g *grid) header(cols ...any) {
	g.w.AppendHeader(table.Row(cols))
}

func (g *grid) row(vals ...any) {
	g.w.AppendRow(table.Row(vals))
}

// alignRight right-aligns columns from..to (1-based, inclusive).
func (g *grid) alignRight(from, to int) {
	cfgs := make([]table.ColumnConfig, 0, to-from+1)
	for n := from; n <= to; n++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	g.w.SetColumnConfigs(cfgs)
}

func (g *grid) String() string {
	if g.mode == Markdown {
		return g.w.RenderMarkdown()
	}

	return g.w.Render()
}
