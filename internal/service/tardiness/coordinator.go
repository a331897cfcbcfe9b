package tardiness

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// editState tracks where a record's pending correction sits in its
// lifecycle. A new edit while pending rearms the timer; once dispatched
// there is no cancellation and no retry.
type editState int

const (
	editIdle editState = iota
	editPending
	editDispatched
)

// persistFunc writes a corrected arrival time to the record source.
type persistFunc func(ctx context.Context, recordID string, actualIn string, lateMinutes int) error

// Notifier surfaces persistence failures to the user. Local optimistic
// state is kept either way, so the displayed warning levels can diverge
// from storage after a failed save; the notification is the only signal.
type Notifier interface {
	NotifyPersistFailure(recordID string, err error)
}

// SlogNotifier is the default Notifier; it logs at error level.
type SlogNotifier struct{}

func (SlogNotifier) NotifyPersistFailure(recordID string, err error) {
	slog.Error("failed to persist arrival time correction", "record_id", recordID, "error", err)
}

type pendingEdit struct {
	timer       *time.Timer
	state       editState
	actualIn    string
	lateMinutes int
}

// EditCoordinator debounces persistence of arrival time corrections.
// Each record id has its own quiet-window timer; a burst of edits to
// one record collapses into a single write carrying the last value.
// Timers for different records never interfere.
type EditCoordinator struct {
	mu      sync.Mutex
	quiet   time.Duration
	persist persistFunc
	notify  Notifier
	pending map[string]*pendingEdit
	wg      sync.WaitGroup
}

func NewEditCoordinator(quiet time.Duration, persist persistFunc, notify Notifier) *EditCoordinator {
	if notify == nil {
		notify = SlogNotifier{}
	}
	return &EditCoordinator{
		quiet:   quiet,
		persist: persist,
		notify:  notify,
		pending: make(map[string]*pendingEdit),
	}
}

// Schedule records the latest correction for recordID and (re)arms its
// quiet-window timer. The caller has already applied the edit to the
// in-memory window; this only defers the external write.
func (c *EditCoordinator) Schedule(recordID string, actualIn string, lateMinutes int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stop returning false means the timer already fired and dispatch is
	// about to run; fall through and arm a fresh entry in that case.
	if edit, ok := c.pending[recordID]; ok && edit.state == editPending && edit.timer.Stop() {
		edit.actualIn = actualIn
		edit.lateMinutes = lateMinutes
		edit.timer.Reset(c.quiet)
		return
	}

	edit := &pendingEdit{
		state:       editPending,
		actualIn:    actualIn,
		lateMinutes: lateMinutes,
	}
	c.wg.Add(1)
	edit.timer = time.AfterFunc(c.quiet, func() {
		c.dispatch(recordID)
	})
	c.pending[recordID] = edit
}

func (c *EditCoordinator) dispatch(recordID string) {
	defer c.wg.Done()

	c.mu.Lock()
	edit, ok := c.pending[recordID]
	if !ok || edit.state != editPending {
		c.mu.Unlock()
		return
	}
	edit.state = editDispatched
	actualIn, lateMinutes := edit.actualIn, edit.lateMinutes
	delete(c.pending, recordID)
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.persist(ctx, recordID, actualIn, lateMinutes); err != nil {
		// No rollback and no retry: the optimistic window state stays.
		c.notify.NotifyPersistFailure(recordID, err)
		return
	}
	slog.Debug("persisted arrival time correction", "record_id", recordID, "actual_in", actualIn)
}

// Wait blocks until every pending edit has fired and dispatched. Used
// in tests and on shutdown.
func (c *EditCoordinator) Wait() {
	c.wg.Wait()
}
