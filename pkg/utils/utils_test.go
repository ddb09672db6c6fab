package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)

	tests := []struct {
		name     string
		input    string
		loc      *time.Location
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "UTC",
			input:    "2024-03-15",
			loc:      time.UTC,
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "meia-noite no fuso informado",
			input:    "2024-03-15",
			loc:      ist,
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, ist),
		},
		{
			name:     "fuso nulo usa UTC",
			input:    "2024-03-15",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{name: "formato errado", input: "15/03/2024", loc: time.UTC, wantErr: true},
		{name: "dia inexistente", input: "2024-02-30", loc: time.UTC, wantErr: true},
		{name: "vazio", input: "", loc: time.UTC, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDateInLocation(tt.input, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(date))
			assert.Equal(t, tt.expected.Location().String(), date.Location().String())
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 23, 59, 10, 5, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), TruncateToDay(in))
}

func TestFractionToPercentage(t *testing.T) {
	assert.Equal(t, 70.0, FractionToPercentage(0.7))
	assert.Equal(t, 0.0, FractionToPercentage(0))
	assert.Equal(t, 100.0, FractionToPercentage(1))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "70.0", FormatFloat(70.0))
	assert.Equal(t, "0.0", FormatFloat(0))
	assert.Equal(t, "100.0", FormatFloat(FractionToPercentage(1)))
	assert.Equal(t, "12.5", FormatFloat(12.5))

	rate := 0.57
	assert.Equal(t, "56.99999999999999", FormatFloat(FractionToPercentage(rate)))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret("", 8))
	assert.Equal(t, "ya29.a0A...", MaskSecret("ya29.a0AfH6SMBx", 8))
	assert.Equal(t, "***...", MaskSecret("short", 8))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}
