package engine

import "github.com/ukaji3/gridnav-go/pkg/gridnav/models"

// State is the tracker's episode state.
type State int

const (
	// StateIdle means no tab episode is in progress.
	StateIdle State = iota
	// StateActive means a tab episode is in progress and a span is available.
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Tracker records the columns visited by Tab and Shift+Tab since the last
// reset and derives the active span from them.
type Tracker struct {
	state State
	span  models.Span
}

// State returns the current episode state.
func (t *Tracker) State() State {
	return t.state
}

// Span returns the active span. ok is false when no episode is in progress.
func (t *Tracker) Span() (span models.Span, ok bool) {
	if t.state != StateActive {
		return models.Span{}, false
	}
	return t.span, true
}

// OnKey updates the tracker for key pressed with the cursor at cursor, before
// the key's movement is applied, and returns the resulting span.
//
// Tab and Shift+Tab seed an episode when none is active; the caller must
// report where the move landed through Extend. Up, Down and Other abandon the
// episode. Left and Right leave it untouched. Enter is handled by the caller,
// which reads the span and then calls Reset.
func (t *Tracker) OnKey(key models.Key, cursor models.Address) (models.Span, bool) {
	switch key {
	case models.KeyTab, models.KeyShiftTab:
		if t.state == StateIdle {
			t.seed(cursor)
		}
	case models.KeyArrowUp, models.KeyArrowDown, models.KeyOther:
		t.Reset()
	}
	return t.Span()
}

// Extend widens the active span so that it covers to. A landing cell on a
// different row than the episode's start row begins a new episode there.
func (t *Tracker) Extend(to models.Address) {
	if t.state == StateIdle || to.Row != t.span.StartRow {
		t.seed(to)
		return
	}
	if to.Col < t.span.StartCol {
		t.span.StartCol = to.Col
	}
	if to.Col > t.span.EndCol {
		t.span.EndCol = to.Col
	}
}

// Reset clears any episode in progress.
func (t *Tracker) Reset() {
	t.state = StateIdle
	t.span = models.Span{}
}

func (t *Tracker) seed(at models.Address) {
	t.state = StateActive
	t.span = models.Span{StartRow: at.Row, StartCol: at.Col, EndCol: at.Col}
}
