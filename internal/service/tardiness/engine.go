package tardiness

import (
	"sort"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
)

// Recompute derives LateMinutes, GraceBreach, LateOccurrence,
// WarningLevel and CutoffPeriod for every record from scratch.
//
// Records are grouped per employee key and walked in (date, parsed
// arrival time) order with a running breach counter: the counter only
// advances on grace breaches, the 3rd and later breach start escalating
// the warning level. All derived fields are overwritten on every call,
// so running Recompute on its own output is a no-op.
//
// The input slice and its entries are never mutated; the result is a
// fresh slice sorted globally by (date, parsed arrival time) for stable
// display order.
func Recompute(records []tardiness.Record) []tardiness.Record {
	out := make([]tardiness.Record, len(records))
	copy(out, records)

	groups := make(map[string][]int)
	order := make([]string, 0)
	for i, rec := range out {
		key := rec.EmployeeKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	for _, key := range order {
		idxs := groups[key]
		// Stable sort keeps input order for identical (date, time)
		// pairs; the ordinal is input-order-dependent in that case.
		sort.SliceStable(idxs, func(a, b int) bool {
			return lessByArrival(out[idxs[a]], out[idxs[b]])
		})

		breaches := 0
		for _, i := range idxs {
			rec := &out[i]
			rec.LateMinutes = LateMinutes(rec.ActualIn)
			rec.GraceBreach = GraceBreach(rec.ActualIn)
			rec.CutoffPeriod = CutoffPeriod(rec.Date)

			if rec.GraceBreach {
				breaches++
				rec.LateOccurrence = breaches
				rec.WarningLevel = max(0, breaches-2)
			} else {
				rec.LateOccurrence = 0
				rec.WarningLevel = 0
			}
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return lessByArrival(out[a], out[b])
	})

	return out
}

// lessByArrival orders by calendar date, then by parsed arrival time.
func lessByArrival(a, b tardiness.Record) bool {
	ad := dayOf(a.Date)
	bd := dayOf(b.Date)
	if !ad.Equal(bd) {
		return ad.Before(bd)
	}
	return ParseClockMinutes(a.ActualIn) < ParseClockMinutes(b.ActualIn)
}

// dayOf strips any time component so dates loaded from different
// sources compare by calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
