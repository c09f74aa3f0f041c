package output

import (
	"fmt"
	"io"

	"github.com/rjboas/random-show-themes/internal/show"
)

// Readable writes one human-readable line per result as soon as it arrives.
type Readable struct {
	w io.Writer
}

// NewReadable returns a Sink printing plain text lines to w.
func NewReadable(w io.Writer) *Readable {
	return &Readable{w: w}
}

// Open is a no-op; the readable format has no header.
func (r *Readable) Open() error { return nil }

// Emit writes a "<song> [<type>] from <title>" line.
func (r *Readable) Emit(song, showTitle string, category show.Category) error {
	_, err := fmt.Fprintf(r.w, "%s [%s] from %s\n", song, category, showTitle)
	return err
}

// Close is a no-op; nothing is buffered.
func (r *Readable) Close() error { return nil }
