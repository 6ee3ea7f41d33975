package gantt

import "time"

// deferredTask is a cancellable one-shot callback driven cooperatively from
// the update loop. There are no goroutines: fire happens synchronously inside
// tick, so a task never runs concurrently with gesture handling.
//
// Cancelling an unarmed task and ticking a cancelled task are both no-ops,
// which lets every gesture exit path cancel unconditionally.
type deferredTask struct {
	fn       func()
	deadline time.Time
	armed    bool
}

// schedule arms the task to fire once d after now. Rescheduling an armed task
// replaces the previous deadline.
func (t *deferredTask) schedule(now time.Time, d time.Duration) {
	t.deadline = now.Add(d)
	t.armed = true
}

// cancel disarms the task without running it.
func (t *deferredTask) cancel() {
	t.armed = false
}

// tick fires the task if its deadline has passed. The task disarms before the
// callback runs, so a callback that reschedules is honored.
func (t *deferredTask) tick(now time.Time) {
	if !t.armed || now.Before(t.deadline) {
		return
	}
	t.armed = false
	if t.fn != nil {
		t.fn()
	}
}
