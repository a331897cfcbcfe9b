package tardiness

import (
	"sync"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
)

// recordWindow owns the loaded reporting window. Everything that reads
// or mutates the window goes through it, so the engine is always called
// with an explicit snapshot instead of ambient shared state. Local
// optimistic edits live here until (and regardless of whether) the
// debounced persistence call lands.
type recordWindow struct {
	mu      sync.RWMutex
	loaded  bool
	month   int
	year    int
	records []tardiness.Record
}

func (w *recordWindow) matches(month, year int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loaded && w.month == month && w.year == year
}

// replace installs a freshly recomputed snapshot for a window.
func (w *recordWindow) replace(month, year int, records []tardiness.Record) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loaded = true
	w.month = month
	w.year = year
	w.records = records
}

// snapshot returns a copy of the current records; callers own the copy.
func (w *recordWindow) snapshot() []tardiness.Record {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]tardiness.Record, len(w.records))
	copy(out, w.records)
	return out
}

// apply mutates one record by id, recomputes the whole window and
// installs the result. It returns the updated record and whether the id
// was found. The mutate-recompute-install sequence holds the lock so a
// render can never observe a half-applied edit.
func (w *recordWindow) apply(id string, mutate func(*tardiness.Record)) (tardiness.Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	found := -1
	for i := range w.records {
		if w.records[i].ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		return tardiness.Record{}, false
	}

	next := make([]tardiness.Record, len(w.records))
	copy(next, w.records)
	mutate(&next[found])

	w.records = Recompute(next)

	for i := range w.records {
		if w.records[i].ID == id {
			return w.records[i], true
		}
	}
	// Unreachable: Recompute never drops records.
	return tardiness.Record{}, false
}

// insert adds a record, recomputes and installs.
func (w *recordWindow) insert(rec tardiness.Record) tardiness.Record {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := make([]tardiness.Record, len(w.records), len(w.records)+1)
	copy(next, w.records)
	next = append(next, rec)

	w.records = Recompute(next)

	for i := range w.records {
		if w.records[i].ID == rec.ID {
			return w.records[i]
		}
	}
	return rec
}

// contains reports whether the window holds a record for the employee
// key on the given calendar day.
func (w *recordWindow) contains(employeeKey string, date string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for i := range w.records {
		if w.records[i].EmployeeKey() == employeeKey && w.records[i].Date.Format("2006-01-02") == date {
			return true
		}
	}
	return false
}
