package engine

import "github.com/ukaji3/gridnav-go/pkg/gridnav/models"

// DefaultSearchHorizon is the number of rows Enter scans for an enterable
// column before falling back.
const DefaultSearchHorizon = 1000

// Resolver computes where Enter moves the cursor.
type Resolver struct {
	filter  *Filter
	horizon int
}

// NewResolver returns a Resolver scanning at most horizon rows below the
// cursor. A non-positive horizon selects DefaultSearchHorizon.
func NewResolver(filter *Filter, horizon int) *Resolver {
	if horizon <= 0 {
		horizon = DefaultSearchHorizon
	}
	return &Resolver{filter: filter, horizon: horizon}
}

// OnEnter returns the cursor after Enter.
//
// Without a usable span the cursor moves one row down in the same column.
// With a span it lands on the first enterable column of the span on the next
// row, skipping rows whose span columns are all locked. If nothing within the
// horizon is enterable it lands on the span's first column of the next row.
// On the last sheet row Enter leaves the cursor where it is.
func (r *Resolver) OnEnter(span models.Span, ok bool, cursor models.Address) models.Address {
	bounds := r.filter.Bounds()
	if cursor.Row >= bounds.LastRow() {
		return cursor
	}
	next := cursor.Row + 1

	if !ok || !span.Valid() || span.StartCol > bounds.LastCol() {
		return models.Address{Row: next, Col: cursor.Col}
	}

	endCol := min(span.EndCol, bounds.LastCol())
	lastRow := min(cursor.Row+r.horizon, bounds.LastRow())
	for row := next; row <= lastRow; row++ {
		for col := span.StartCol; col <= endCol; col++ {
			a := models.Address{Row: row, Col: col}
			if r.filter.IsEnterable(a) {
				return a
			}
		}
	}
	return models.Address{Row: next, Col: span.StartCol}
}
