package layout

import (
	"errors"
	"time"
)

var (
	// ErrTransitionBusy indicates a transition begin while one is running.
	ErrTransitionBusy = errors.New("selection transition already running")
	// ErrBadTarget indicates a transition target outside the item range.
	ErrBadTarget = errors.New("selection target out of range")
)

// SelectorState is the state of the selection machine.
type SelectorState int8

const (
	// Idle : no transition running; the selected index is settled.
	Idle SelectorState = iota
	// Animating : a transition from one index to another is in flight.
	Animating
)

func (s SelectorState) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Selector is the finite state machine for selection changes. The
// geometry engine stays ignorant of gestures and animation timing; it
// only ever reads SelectedIndex and TransitionalOffset from here. The
// selected index flips atomically on Complete; an interrupted transition
// resolves to the nearest index by fraction completed.
type Selector struct {
	state    SelectorState
	count    int
	selected int
	from, to int
	start    time.Time
	duration time.Duration
}

// NewSelector creates an idle selector over count items with the given
// initial selection.
func NewSelector(count, selected int) *Selector {
	if count < 1 {
		count = 1
	}
	return &Selector{count: count, selected: IndexFor(0, selected, count)}
}

// State returns the current machine state.
func (s *Selector) State() SelectorState {
	return s.state
}

// SelectedIndex returns the settled selection. During a transition this
// is still the index the transition started from.
func (s *Selector) SelectedIndex() int {
	return s.selected
}

// Target returns the index a running transition is heading for, or the
// selected index when idle.
func (s *Selector) Target() int {
	if s.state == Animating {
		return s.to
	}
	return s.selected
}

// Begin starts a transition to the target index. Gesture-start
// transition of the machine.
func (s *Selector) Begin(target int, at time.Time, duration time.Duration) error {
	if s.state == Animating {
		return ErrTransitionBusy
	}
	if target < 0 || target >= s.count {
		return ErrBadTarget
	}
	if target == s.selected {
		return nil
	}
	s.state = Animating
	s.from = s.selected
	s.to = target
	s.start = at
	s.duration = duration
	tracer().Debugf("selection transition %d → %d over %s", s.from, s.to, duration)
	return nil
}

// Complete settles a running transition: the selection flips atomically
// to the target and the offset returns to zero. Gesture-complete
// transition of the machine.
func (s *Selector) Complete() {
	if s.state != Animating {
		return
	}
	s.selected = s.to
	s.state = Idle
}

// Cancel interrupts a running transition at the given time, resolving
// the selection from how far progress had gone.
func (s *Selector) Cancel(at time.Time) {
	if s.state != Animating {
		return
	}
	s.selected = ResolveIndex(s.from, s.to, s.count, s.fraction(at))
	s.state = Idle
}

// TransitionalOffset returns the continuous shift to apply to all item
// positions at the given time: zero when idle, easing from 0 toward the
// signed item-delta while animating. Pure query, no state change.
func (s *Selector) TransitionalOffset(at time.Time) float64 {
	if s.state != Animating {
		return 0
	}
	delta := float64(SignedDelta(s.from, s.to, s.count))
	return delta * ease(s.fraction(at))
}

func (s *Selector) fraction(at time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	f := float64(at.Sub(s.start)) / float64(s.duration)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ease is a cubic transition curve over 0..1, flat at both ends.
func ease(x float64) float64 {
	return x * x * (3 - 2*x)
}
