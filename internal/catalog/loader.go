// Package catalog loads the two JSON inputs for a run: the dictionary of
// all known shows and the candidate list of show IDs to sample from.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rjboas/random-show-themes/internal/show"
)

// LoadShows parses a dictionary file into a catalog keyed by show ID.
// The file must contain a JSON object mapping IDs to show entries.
func LoadShows(path string) (map[uint64]show.Show, error) {
	var shows map[uint64]show.Show
	if err := readJSONFile(path, &shows); err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %w", path, err)
	}
	return shows, nil
}

// LoadList parses a list file into an ordered sequence of show IDs.
// The file must contain a JSON array of unsigned integers. Duplicate IDs
// are allowed and preserved.
func LoadList(path string) ([]uint64, error) {
	var list []uint64
	if err := readJSONFile(path, &list); err != nil {
		return nil, fmt.Errorf("loading list %s: %w", path, err)
	}
	return list, nil
}

func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(v)
}
