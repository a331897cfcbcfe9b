package tardiness

import (
	"testing"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCutoffPeriod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tardiness.CutoffFirst, CutoffPeriod(day(2024, time.March, 1)))
	assert.Equal(t, tardiness.CutoffFirst, CutoffPeriod(day(2024, time.March, 15)))
	assert.Equal(t, tardiness.CutoffSecond, CutoffPeriod(day(2024, time.March, 16)))
	assert.Equal(t, tardiness.CutoffSecond, CutoffPeriod(day(2024, time.March, 31)))

	// Partitioning depends only on the day number, not month length.
	assert.Equal(t, tardiness.CutoffSecond, CutoffPeriod(day(2023, time.February, 16)))
}

func TestCutoffLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 - 15", CutoffLabel(day(2024, time.March, 10)))
	assert.Equal(t, "16 - 31", CutoffLabel(day(2024, time.March, 20)))
	assert.Equal(t, "16 - 30", CutoffLabel(day(2024, time.April, 20)))
	assert.Equal(t, "16 - 28", CutoffLabel(day(2023, time.February, 20)))
	assert.Equal(t, "16 - 29", CutoffLabel(day(2024, time.February, 20)))
}
