package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("1")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = ParsePositiveInt("99")
	assert.NoError(t, err)
	assert.Equal(t, 99, n)

	for _, bad := range []string{"-2", "0", "abc", "1.5", ""} {
		_, err := ParsePositiveInt(bad)
		assert.ErrorContains(t, err, "must be a positive, non-zero integer", "input %q", bad)
	}
}
