package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/rjboas/random-show-themes/internal/show"
)

// defaultTableWidth is used when stdout is not a terminal and no width
// override was given.
const defaultTableWidth = 60

// Table buffers result rows and renders a rounded-border table on Close.
type Table struct {
	w     io.Writer
	width int
	rows  [][]string
}

// NewTable returns a buffering table Sink. A width of zero or less means
// "use the terminal width", falling back to defaultTableWidth when stdout
// is not a terminal.
func NewTable(w io.Writer, width int) *Table {
	if width <= 0 {
		width = terminalWidth()
	}
	return &Table{w: w, width: width}
}

// Open is a no-op; the header is part of the rendered table.
func (t *Table) Open() error { return nil }

// Emit buffers one row until Close renders the table.
func (t *Table) Emit(song, showTitle string, category show.Category) error {
	t.rows = append(t.rows, []string{song, showTitle, category.String()})
	return nil
}

// Close renders the buffered rows.
func (t *Table) Close() error {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Width(t.width).
		Headers("Song", "Show", "Type").
		Rows(t.rows...)

	_, err := fmt.Fprintln(t.w, tbl.Render())
	return err
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTableWidth
}
