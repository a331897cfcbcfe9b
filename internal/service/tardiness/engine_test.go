package tardiness

import (
	"testing"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, employeeID string, d time.Time, actualIn string) tardiness.Record {
	return tardiness.Record{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: "Employee " + employeeID,
		Date:         d,
		ActualIn:     actualIn,
	}
}

func TestRecompute_WarningEscalation(t *testing.T) {
	t.Parallel()

	// Five breaching arrivals in chronological order: occurrences 1..5,
	// warning levels escalate from the 3rd breach.
	records := []tardiness.Record{
		rec("a", "e1", day(2024, time.June, 3), "08:06"),
		rec("b", "e1", day(2024, time.June, 4), "08:10"),
		rec("c", "e1", day(2024, time.June, 5), "08:07"),
		rec("d", "e1", day(2024, time.June, 6), "08:20"),
		rec("e", "e1", day(2024, time.June, 7), "08:30"),
	}

	out := Recompute(records)
	require.Len(t, out, 5)

	wantOccurrence := []int{1, 2, 3, 4, 5}
	wantLevel := []int{0, 0, 1, 2, 3}
	for i, r := range out {
		assert.Equal(t, wantOccurrence[i], r.LateOccurrence, "record %s", r.ID)
		assert.Equal(t, wantLevel[i], r.WarningLevel, "record %s", r.ID)
		assert.True(t, r.GraceBreach, "record %s", r.ID)
	}
}

func TestRecompute_NonBreachingRecordsGetZeroOrdinal(t *testing.T) {
	t.Parallel()

	records := []tardiness.Record{
		rec("a", "e1", day(2024, time.June, 3), "08:03"), // late, not a breach
		rec("b", "e1", day(2024, time.June, 4), "08:10"),
		rec("c", "e1", day(2024, time.June, 5), "08:05"), // grace boundary
		rec("d", "e1", day(2024, time.June, 6), "08:12"),
	}

	out := Recompute(records)

	byID := map[string]tardiness.Record{}
	for _, r := range out {
		byID[r.ID] = r
	}

	assert.Equal(t, 3, byID["a"].LateMinutes)
	assert.False(t, byID["a"].GraceBreach)
	assert.Equal(t, 0, byID["a"].LateOccurrence)
	assert.Equal(t, 0, byID["a"].WarningLevel)

	assert.Equal(t, 0, byID["c"].LateOccurrence)

	// Breaches count only themselves: b is the 1st, d the 2nd.
	assert.Equal(t, 1, byID["b"].LateOccurrence)
	assert.Equal(t, 2, byID["d"].LateOccurrence)
	assert.Equal(t, 0, byID["d"].WarningLevel)
}

func TestRecompute_GroupsByEmployee(t *testing.T) {
	t.Parallel()

	records := []tardiness.Record{
		rec("a1", "e1", day(2024, time.June, 3), "08:10"),
		rec("b1", "e2", day(2024, time.June, 3), "08:10"),
		rec("a2", "e1", day(2024, time.June, 4), "08:10"),
		rec("b2", "e2", day(2024, time.June, 5), "08:10"),
		rec("a3", "e1", day(2024, time.June, 6), "08:10"),
	}

	out := Recompute(records)

	byID := map[string]tardiness.Record{}
	for _, r := range out {
		byID[r.ID] = r
	}

	assert.Equal(t, 3, byID["a3"].LateOccurrence)
	assert.Equal(t, 1, byID["a3"].WarningLevel)
	assert.Equal(t, 2, byID["b2"].LateOccurrence)
	assert.Equal(t, 0, byID["b2"].WarningLevel)
}

func TestRecompute_FallsBackToNameWhenIDMissing(t *testing.T) {
	t.Parallel()

	noID := func(id string, d time.Time, actualIn string) tardiness.Record {
		return tardiness.Record{ID: id, EmployeeName: "Juan Dela Cruz", Date: d, ActualIn: actualIn}
	}

	records := []tardiness.Record{
		noID("x", day(2024, time.June, 3), "08:10"),
		noID("y", day(2024, time.June, 4), "08:10"),
		noID("z", day(2024, time.June, 5), "08:10"),
	}

	out := Recompute(records)

	byID := map[string]tardiness.Record{}
	for _, r := range out {
		byID[r.ID] = r
	}
	assert.Equal(t, 3, byID["z"].LateOccurrence)
	assert.Equal(t, 1, byID["z"].WarningLevel)
}

func TestRecompute_OrdersByDateThenParsedTime(t *testing.T) {
	t.Parallel()

	// Input is shuffled; sorting is by date then parsed time, so the
	// 12-hour and 24-hour forms interleave correctly.
	records := []tardiness.Record{
		rec("late", "e1", day(2024, time.June, 3), "9:00 AM"),
		rec("early", "e1", day(2024, time.June, 3), "08:10"),
		rec("prev", "e1", day(2024, time.June, 2), "11:00 AM"),
	}

	out := Recompute(records)
	require.Len(t, out, 3)

	assert.Equal(t, []string{"prev", "early", "late"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, 1, out[0].LateOccurrence)
	assert.Equal(t, 2, out[1].LateOccurrence)
	assert.Equal(t, 3, out[2].LateOccurrence)
}

func TestRecompute_Idempotent(t *testing.T) {
	t.Parallel()

	records := []tardiness.Record{
		rec("a", "e1", day(2024, time.June, 3), "08:06"),
		rec("b", "e2", day(2024, time.June, 3), "08:04"),
		rec("c", "e1", day(2024, time.June, 10), "garbage"),
		rec("d", "e1", day(2024, time.June, 20), "08:30"),
	}

	once := Recompute(records)
	twice := Recompute(once)

	assert.Equal(t, once, twice)
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := []tardiness.Record{
		rec("a", "e1", day(2024, time.June, 3), "08:30"),
	}

	_ = Recompute(records)

	assert.Equal(t, 0, records[0].LateOccurrence)
	assert.Equal(t, 0, records[0].LateMinutes)
	assert.Empty(t, records[0].CutoffPeriod)
}

func TestRecompute_UnparseableTimeDegradesToMidnight(t *testing.T) {
	t.Parallel()

	out := Recompute([]tardiness.Record{
		rec("a", "e1", day(2024, time.June, 3), "??:??"),
	})

	assert.Equal(t, 0, out[0].LateMinutes)
	assert.False(t, out[0].GraceBreach)
	assert.Equal(t, 0, out[0].LateOccurrence)
}

func TestRecompute_SetsCutoffPeriod(t *testing.T) {
	t.Parallel()

	out := Recompute([]tardiness.Record{
		rec("a", "e1", day(2024, time.June, 15), "08:10"),
		rec("b", "e1", day(2024, time.June, 16), "08:10"),
	})

	assert.Equal(t, tardiness.CutoffFirst, out[0].CutoffPeriod)
	assert.Equal(t, tardiness.CutoffSecond, out[1].CutoffPeriod)
}
