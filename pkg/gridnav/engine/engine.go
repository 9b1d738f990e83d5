package engine

import (
	"io"
	"log/slog"

	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
)

// Options configures an Engine.
type Options struct {
	// Bounds are the sheet limits. The zero value selects models.DefaultBounds.
	Bounds models.Bounds
	// SearchHorizon is the number of rows Enter scans below the cursor.
	// Zero selects DefaultSearchHorizon.
	SearchHorizon int
	// Logger receives debug output for every transition. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns default engine options.
func DefaultOptions() Options {
	return Options{
		Bounds:        models.DefaultBounds(),
		SearchHorizon: DefaultSearchHorizon,
	}
}

// Engine is the navigation state machine for one open sheet. It is not safe
// for concurrent use; the host feeds it key events one at a time.
type Engine struct {
	tracker  Tracker
	filter   *Filter
	resolver *Resolver
	logger   *slog.Logger
}

// New returns an Engine reading protection state from query.
func New(query ProtectionQuery, opts Options) *Engine {
	if opts.Bounds.Rows <= 0 || opts.Bounds.Cols <= 0 {
		opts.Bounds = models.DefaultBounds()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	filter := NewFilter(query, opts.Bounds)
	return &Engine{
		filter:   filter,
		resolver: NewResolver(filter, opts.SearchHorizon),
		logger:   logger,
	}
}

// NotifyKey handles one key press with the cursor at cursor, before the key
// is applied. For Tab, Shift+Tab and Enter it returns the new cursor and
// true. For any other key it only updates the episode state and returns the
// cursor unchanged with false; the host moves the cursor itself.
func (e *Engine) NotifyKey(key models.Key, cursor models.Address) (models.Address, bool) {
	switch key {
	case models.KeyTab, models.KeyShiftTab:
		e.tracker.OnKey(key, cursor)
		dir := 1
		if key == models.KeyShiftTab {
			dir = -1
		}
		to, _ := e.filter.NextInRow(cursor, dir)
		e.tracker.Extend(to)
		span, _ := e.tracker.Span()
		e.logger.Debug("tab", "key", key, "from", cursor, "to", to,
			"span_start", span.StartCol, "span_end", span.EndCol)
		return to, true

	case models.KeyEnter:
		span, ok := e.tracker.Span()
		to := e.resolver.OnEnter(span, ok, cursor)
		e.tracker.Reset()
		e.logger.Debug("enter", "from", cursor, "to", to, "had_span", ok)
		return to, true

	default:
		before := e.tracker.State()
		e.tracker.OnKey(key, cursor)
		if before == StateActive && e.tracker.State() == StateIdle {
			e.logger.Debug("tab episode abandoned", "key", key, "at", cursor)
		}
		return cursor, false
	}
}

// Span returns the active span, if a tab episode is in progress.
func (e *Engine) Span() (models.Span, bool) {
	return e.tracker.Span()
}

// State returns the tracker's episode state.
func (e *Engine) State() State {
	return e.tracker.State()
}

// Filter returns the protection filter the engine navigates with.
func (e *Engine) Filter() *Filter {
	return e.filter
}

// Reset abandons any tab episode, e.g. after protection is toggled.
func (e *Engine) Reset() {
	e.tracker.Reset()
}
