package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/width"

	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/tui/theme"
)

// EntryTable renders navigation entries as a numbered table.
type EntryTable struct {
	Styled bool
	Theme  *theme.Theme
}

var entryHeaders = []string{"#", "TEXT", "LINK"}

func entryRows(entries []nav.Entry) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i + 1), e.Text, e.Link}
	}
	return rows
}

// Render writes entries to w in order.
func (t EntryTable) Render(w io.Writer, entries []nav.Entry) error {
	return RenderTable(w, entryHeaders, entryRows(entries), t.Styled, t.Theme)
}

// RenderTable writes a table with a header row. Styled output is a bordered
// lipgloss table; plain output pads columns with spaces, which keeps it
// stable for pipes and tests.
func RenderTable(w io.Writer, headers []string, rows [][]string, styled bool, th *theme.Theme) error {
	if !styled {
		return renderPlain(w, headers, rows)
	}
	if th == nil {
		th = theme.DefaultTheme
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	last := len(headers) - 1

	tbl := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return th.Header.Padding(0, 1)
			case col == 0:
				return th.Muted.Padding(0, 1)
			case col == last:
				return th.Accent.Padding(0, 1)
			default:
				return cell
			}
		})

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

// renderPlain aligns columns by display width, counting East Asian wide
// and fullwidth runes as two cells.
func renderPlain(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	measure := func(row []string) {
		for i, c := range row {
			if n := DisplayWidth(c); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	writeRow := func(row []string) error {
		var b strings.Builder
		for i, c := range row {
			b.WriteString(c)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-DisplayWidth(c)+2))
			}
		}
		_, err := fmt.Fprintln(w, b.String())
		return err
	}

	if err := writeRow(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
