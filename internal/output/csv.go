package output

import (
	"encoding/csv"
	"io"

	"github.com/rjboas/random-show-themes/internal/show"
)

// CSV writes results as comma-separated rows, flushing after every row so
// partial output survives a later failure.
type CSV struct {
	w *csv.Writer
}

// NewCSV returns a Sink writing CSV to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

// Open writes the header row.
func (c *CSV) Open() error {
	if err := c.w.Write([]string{"Song", "Show", "Type"}); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// Emit writes one result row in header order and flushes it immediately.
func (c *CSV) Emit(song, showTitle string, category show.Category) error {
	if err := c.w.Write([]string{song, showTitle, category.String()}); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// Close is a no-op; every row has already been flushed.
func (c *CSV) Close() error { return nil }
