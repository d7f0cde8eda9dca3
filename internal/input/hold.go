package input

import (
	"time"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// DefaultHoldDuration is how long a key is considered "held" after its last
// press. It bridges the gaps between auto-repeats (about 30 per second) but
// not the initial repeat delay, commonly 250ms to 660ms: a held key moves,
// pauses until repeat starts, then moves steadily. A hold longer than the
// delay removes the pause but makes a single tap overshoot. Tune it per
// terminal with input.hold.
const DefaultHoldDuration = 150 * time.Millisecond

// HoldTracker remembers the last press of every key. It is not safe for
// concurrent use; backends feed it from the goroutine that polls events.
type HoldTracker struct {
	hold time.Duration
	last map[core.Key]time.Time
}

// NewHoldTracker creates a tracker. A non-positive hold uses DefaultHoldDuration.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HoldTracker{
		hold: hold,
		last: make(map[core.Key]time.Time),
	}
}

// Hold returns the hold duration.
func (h *HoldTracker) Hold() time.Duration {
	return h.hold
}

// Press records a press or auto-repeat of k at now.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	h.last[k] = now
}

// Down reports whether k was pressed within the hold duration before now.
func (h *HoldTracker) Down(k core.Key, now time.Time) bool {
	t, ok := h.last[k]
	if !ok {
		return false
	}
	return now.Sub(t) < h.hold
}
