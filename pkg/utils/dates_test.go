package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	parsed, err := ParseDate("01-01-2024")
	require.NoError(t, err)

	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, "01-01-2024", FormatDate(parsed))
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	for _, value := range []string{"2024-01-01", "01/01/2024", "32-01-2024", ""} {
		_, err := ParseDate(value)
		assert.Error(t, err, "value %q should not parse", value)
	}
}
