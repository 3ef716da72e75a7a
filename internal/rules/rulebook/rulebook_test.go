package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbacode/ainneve/internal/errors"
	"github.com/abbacode/ainneve/internal/rules/rulebook"
)

func TestParse(t *testing.T) {
	tests := []struct {
		notation string
		want     rulebook.Notation
	}{
		{"1d6", rulebook.Notation{Count: 1, Size: 6}},
		{"1d6+1", rulebook.Notation{Count: 1, Size: 6, Modifier: 1}},
		{"1d6-1", rulebook.Notation{Count: 1, Size: 6, Modifier: -1}},
		{"4d20+12", rulebook.Notation{Count: 4, Size: 20, Modifier: 12}},
	}
	for _, tt := range tests {
		n, err := rulebook.Parse(tt.notation)
		require.NoError(t, err, tt.notation)
		assert.Equal(t, tt.want, n, tt.notation)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, notation := range []string{"", "d6", "1d", "1d6+", "2x6", "0d6", "1d0", "1d6 +1"} {
		_, err := rulebook.Parse(notation)
		require.Error(t, err, notation)
		assert.True(t, errors.IsInvalidArgument(err), notation)
	}
}

func TestRollMax(t *testing.T) {
	tests := []struct {
		notation string
		want     int
	}{
		{"1d6+1", 7},
		{"1d6", 6},
		{"1d6-1", 5},
		{"3d8+2", 26},
	}
	for _, tt := range tests {
		got, err := rulebook.RollMax(tt.notation)
		require.NoError(t, err, tt.notation)
		assert.Equal(t, tt.want, got, tt.notation)
	}
}

func TestRollStaysInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		got, err := rulebook.Roll("2d6+1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 3)
		assert.LessOrEqual(t, got, 13)
	}
}

func TestRollInvalidNotation(t *testing.T) {
	_, err := rulebook.Roll("banana")
	assert.True(t, errors.IsInvalidArgument(err))
}
