// Package config defines the explicit run configuration assembled by the
// command layer and handed to the run entry point.
package config

import (
	"errors"
	"strconv"

	"github.com/rjboas/random-show-themes/internal/logging"
)

// Mode selects the output renderer.
type Mode int

const (
	ModeReadable Mode = iota
	ModeTable
	ModeCSV
)

// Run carries everything one invocation needs. It is built from the CLI
// flags and never mutated after that.
type Run struct {
	Results    int    // requested number of results
	Dictionary string // path to the dictionary of all known shows
	List       string // path to the candidate-list subset
	HardFail   bool   // any failure exits non-zero
	Mode       Mode
	TableWidth int // 0 means detect from the terminal
	Logging    logging.Config
}

// ParsePositiveInt parses a positive, non-zero integer argument.
func ParsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("must be a positive, non-zero integer")
	}
	return n, nil
}
