package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentageText(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		whole    int
		expected string
	}{
		{"Sem base - texto zero", 0, 0, "0"},
		{"Seis de dez", 6, 10, "60.00"},
		{"Um terço", 1, 3, "33.33"},
		{"Todos", 4, 4, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentageText(tt.part, tt.whole))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.InDelta(t, 33.333, Percentage(1, 3), 0.001)
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.346))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.True(t, math.IsNaN(RoundWithTwoDecimalPlace(math.NaN())))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-05-17")
	assert.NoError(t, err)
	if assert.NotNil(t, date) {
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), *date)
	}

	_, err = ParseDate("17/05/2024")
	assert.Error(t, err)

	assert.Equal(t, time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC), EndOfDay(*date))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(8)
	assert.NoError(t, err)
	assert.Len(t, id, 8)
}
