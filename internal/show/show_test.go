package show

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	t.Run("Concatenation Order", func(t *testing.T) {
		s := Show{
			OpeningThemes:   []string{"A"},
			EndingThemes:    []string{"B"},
			OtherSoundtrack: nil,
		}
		assert.Equal(t, []string{"A", "B"}, s.Themes())
	})

	t.Run("All Lists Populated", func(t *testing.T) {
		s := Show{
			OpeningThemes:   []string{"op1", "op2"},
			EndingThemes:    []string{"ed1"},
			OtherSoundtrack: []string{"st1", "st2"},
		}
		assert.Equal(t, []string{"op1", "op2", "ed1", "st1", "st2"}, s.Themes())
	})

	t.Run("Duplicates Preserved", func(t *testing.T) {
		s := Show{
			OpeningThemes: []string{"same", "same"},
			EndingThemes:  []string{"same"},
		}
		assert.Equal(t, []string{"same", "same", "same"}, s.Themes())
	})

	t.Run("Empty Show", func(t *testing.T) {
		s := Show{}
		assert.Empty(t, s.Themes())
	})
}

func TestClassify(t *testing.T) {
	s := Show{
		OpeningThemes: []string{"A"},
		EndingThemes:  []string{"B"},
	}
	assert.Equal(t, Opening, s.Classify("A"))
	assert.Equal(t, Ending, s.Classify("B"))
	assert.Equal(t, Other, s.Classify("C"))
}

func TestClassifyTieBreak(t *testing.T) {
	// A theme listed as both an opening and an ending is reported as the
	// opening; the opening list is checked first.
	s := Show{
		OpeningThemes: []string{"both"},
		EndingThemes:  []string{"both"},
	}
	assert.Equal(t, Opening, s.Classify("both"))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "OP", Opening.String())
	assert.Equal(t, "ED", Ending.String())
	assert.Equal(t, "ST", Other.String())
}

func TestUnmarshal(t *testing.T) {
	t.Run("Canonical Fields", func(t *testing.T) {
		var s Show
		data := `{"id": 5, "title": "X", "url": "https://example.com/5", "opening_themes": ["op"]}`
		require.NoError(t, json.Unmarshal([]byte(data), &s))
		assert.Equal(t, uint64(5), s.ID)
		assert.Equal(t, "X", s.Title)
		assert.Equal(t, "https://example.com/5", s.URL)
		assert.Equal(t, []string{"op"}, s.OpeningThemes)
		assert.Empty(t, s.EndingThemes)
		assert.Empty(t, s.OtherSoundtrack)
	})

	t.Run("Aliased Fields", func(t *testing.T) {
		var s Show
		data := `{"mal_id": 42, "title": "Y", "soundtrack": ["st"]}`
		require.NoError(t, json.Unmarshal([]byte(data), &s))
		assert.Equal(t, uint64(42), s.ID)
		assert.Equal(t, []string{"st"}, s.OtherSoundtrack)
	})

	t.Run("Canonical Wins Over Alias", func(t *testing.T) {
		var s Show
		data := `{"id": 1, "mal_id": 2, "other_soundtrack": ["a"], "soundtrack": ["b"]}`
		require.NoError(t, json.Unmarshal([]byte(data), &s))
		assert.Equal(t, uint64(1), s.ID)
		assert.Equal(t, []string{"a"}, s.OtherSoundtrack)
	})

	t.Run("Unknown Fields Ignored", func(t *testing.T) {
		var s Show
		data := `{"id": 3, "title": "Z", "score": 9.1, "members": 120000}`
		require.NoError(t, json.Unmarshal([]byte(data), &s))
		assert.Equal(t, uint64(3), s.ID)
	})
}
