package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateForDB(t *testing.T) {
	d := time.Date(2023, time.January, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2023-01-05", FormatDateForDB(d))
}

func TestFormatDatePtrForDB(t *testing.T) {
	assert.Nil(t, FormatDatePtrForDB(nil))

	d := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-01-05", FormatDatePtrForDB(&d))
}

func TestParseDateFromDB(t *testing.T) {
	d, err := ParseDateFromDB("2023-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 5, d.Day())

	_, err = ParseDateFromDB("05/01/2023")
	assert.Error(t, err)
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2023, time.June, 1, 9, 30, 0, 0, time.UTC)
	parsed, err := ParseTimestampFromDB(FormatTimestampForDB(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))
}
