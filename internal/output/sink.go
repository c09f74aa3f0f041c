// Package output renders sampled themes. The sampler drives a Sink without
// knowing the concrete format; one implementation exists per display mode.
package output

import "github.com/rjboas/random-show-themes/internal/show"

// Sink receives sampled results one at a time.
//
// Open is called once before any result and emits a header for formats that
// have one. Emit appends a single result row and may fail; an Emit failure
// affects only that result, not the run. Close finalizes the output; for
// unbuffered formats it is a no-op.
type Sink interface {
	Open() error
	Emit(song, showTitle string, category show.Category) error
	Close() error
}
