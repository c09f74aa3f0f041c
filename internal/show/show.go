// Package show defines the show data model and the theme aggregation and
// classification rules used by the sampler.
package show

import "encoding/json"

// Category identifies which of a show's theme lists a song came from.
type Category int

const (
	Opening Category = iota
	Ending
	Other
)

// String returns the short label used in every output format.
func (c Category) String() string {
	switch c {
	case Opening:
		return "OP"
	case Ending:
		return "ED"
	default:
		return "ST"
	}
}

// Show is one catalog entry. Theme lists default to empty and may contain
// duplicates, both within a list and across lists; duplicates are preserved.
type Show struct {
	ID              uint64   `json:"id"`
	Title           string   `json:"title"`
	URL             string   `json:"url,omitempty"`
	OpeningThemes   []string `json:"opening_themes"`
	EndingThemes    []string `json:"ending_themes"`
	OtherSoundtrack []string `json:"other_soundtrack"`
}

// showAlias carries the alternate field names some catalog exports use.
// "mal_id" is accepted for "id" and "soundtrack" for "other_soundtrack".
type showAlias struct {
	ID              *uint64  `json:"id"`
	MalID           *uint64  `json:"mal_id"`
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	OpeningThemes   []string `json:"opening_themes"`
	EndingThemes    []string `json:"ending_themes"`
	OtherSoundtrack []string `json:"other_soundtrack"`
	Soundtrack      []string `json:"soundtrack"`
}

// UnmarshalJSON decodes a Show, resolving field aliases. Unknown fields are
// ignored and absent theme lists decode to empty.
func (s *Show) UnmarshalJSON(data []byte) error {
	var aux showAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*s = Show{
		Title:           aux.Title,
		URL:             aux.URL,
		OpeningThemes:   aux.OpeningThemes,
		EndingThemes:    aux.EndingThemes,
		OtherSoundtrack: aux.OtherSoundtrack,
	}
	switch {
	case aux.ID != nil:
		s.ID = *aux.ID
	case aux.MalID != nil:
		s.ID = *aux.MalID
	}
	if s.OtherSoundtrack == nil {
		s.OtherSoundtrack = aux.Soundtrack
	}
	return nil
}

// Themes merges the three theme lists into one pool: openings, then endings,
// then other soundtrack. Empty lists are skipped rather than appended, which
// is behaviorally identical but avoids allocation in the common case where
// a show only has one or two populated lists.
func (s *Show) Themes() []string {
	themes := make([]string, 0, len(s.OpeningThemes)+len(s.EndingThemes)+len(s.OtherSoundtrack))
	themes = smartAppend(themes, s.OpeningThemes)
	themes = smartAppend(themes, s.EndingThemes)
	themes = smartAppend(themes, s.OtherSoundtrack)
	return themes
}

// Classify reports which category a theme belongs to, checking the opening
// list first, then the ending list, and defaulting to Other. A theme that
// appears in both the opening and ending lists is always Opening; first
// match wins.
func (s *Show) Classify(theme string) Category {
	if contains(s.OpeningThemes, theme) {
		return Opening
	}
	if contains(s.EndingThemes, theme) {
		return Ending
	}
	return Other
}

// smartAppend appends other to dst, skipping the call when other is empty.
func smartAppend(dst, other []string) []string {
	if len(other) == 0 {
		return dst
	}
	return append(dst, other...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
