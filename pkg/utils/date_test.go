package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalDate(t *testing.T) {
	date, err := ParseOptionalDate("2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), *date)
}

func TestParseOptionalDateEmpty(t *testing.T) {
	date, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, date)
}

func TestParseOptionalDateInvalid(t *testing.T) {
	_, err := ParseOptionalDate("02/03/2026")
	assert.Error(t, err)
}

func TestParseDateEmptyYieldsZeroTime(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.True(t, date.IsZero())
}
