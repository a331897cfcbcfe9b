package tardiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"12-hour morning", "8:05 AM", 485},
		{"12-hour no space", "8:05AM", 485},
		{"12-hour lowercase", "8:05 am", 485},
		{"12-hour afternoon", "1:30 PM", 810},
		{"noon", "12:00 PM", 720},
		{"midnight", "12:00 AM", 0},
		{"24-hour", "08:05", 485},
		{"24-hour single digit hour", "8:05", 485},
		{"24-hour with seconds", "08:05:00", 485},
		{"24-hour seconds ignored", "08:05:59", 485},
		{"24-hour evening", "17:45", 1065},
		{"garbage", "garbage", 0},
		{"empty", "", 0},
		{"bare number", "805", 0},
		{"hour out of range", "25:00", 0},
		{"minute out of range", "08:75", 0},
		{"meridiem hour zero", "0:30 AM", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClockMinutes(tt.input))
		})
	}
}

func TestLateMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, LateMinutes("07:59"))
	assert.Equal(t, 0, LateMinutes("08:00"))
	assert.Equal(t, 3, LateMinutes("08:03"))
	assert.Equal(t, 6, LateMinutes("08:06"))
	assert.Equal(t, 0, LateMinutes("not a time"))
}

func TestGraceBreach(t *testing.T) {
	t.Parallel()

	// Exactly 08:05 is late but not a breach; the two flags are
	// independent.
	assert.False(t, GraceBreach("08:05"))
	assert.True(t, GraceBreach("08:06"))
	assert.False(t, GraceBreach("08:00"))
	assert.False(t, GraceBreach("garbage"))
	assert.True(t, GraceBreach("9:00 AM"))
}
