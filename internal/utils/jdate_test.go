package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplayLocal(t *testing.T) {
	date := time.Date(2016, time.October, 11, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "1395-07-20 14:30", ToDisplayLocal(date))

	assert.Equal(t, "-", ToDisplayLocal(time.Time{}))
}

func TestToGregorian(t *testing.T) {
	date, err := ToGregorian(1395, 7, 20)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, time.October, 11, 0, 0, 0, 0, time.UTC), date)
}

func TestLocalDateRoundTrip(t *testing.T) {
	original := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	display := ToDisplayLocal(original)
	parsed, err := ParseLocalDate(display[:10])
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed), "la conversión de ida y vuelta no debe mover la fecha")
}

func TestParseLocalDate(t *testing.T) {
	date, err := ParseLocalDate("1395-07-20")
	require.NoError(t, err)
	assert.Equal(t, 2016, date.Year())

	_, err = ParseLocalDate("fecha-rota")
	assert.Error(t, err)
}
