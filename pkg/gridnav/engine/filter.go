// Package engine implements keyboard navigation for a spreadsheet grid: it
// remembers the columns crossed by Tab and Shift+Tab and decides where Enter
// lands, honouring sheet protection.
package engine

import "github.com/ukaji3/gridnav-go/pkg/gridnav/models"

// ProtectionQuery is the read-only view of a document's protection state.
type ProtectionQuery interface {
	// SheetProtected reports whether sheet protection is enabled.
	SheetProtected() bool
	// CellLocked reports whether the cell carries the locked flag,
	// either directly or by default inheritance.
	CellLocked(a models.Address) bool
}

// Filter decides which cells the cursor may land on.
type Filter struct {
	query  ProtectionQuery
	bounds models.Bounds
}

// NewFilter returns a Filter over query. A nil query behaves as an unprotected sheet.
func NewFilter(query ProtectionQuery, bounds models.Bounds) *Filter {
	return &Filter{query: query, bounds: bounds}
}

// IsEnterable returns false iff a is outside the sheet, or the sheet is
// protected and a is locked.
func (f *Filter) IsEnterable(a models.Address) bool {
	if !f.bounds.Contains(a) {
		return false
	}
	if f.query == nil || !f.query.SheetProtected() {
		return true
	}
	return !f.query.CellLocked(a)
}

// Bounds returns the sheet limits the filter checks against.
func (f *Filter) Bounds() models.Bounds {
	return f.bounds
}

// NextInRow returns the nearest enterable cell strictly after from in the
// given column direction (+1 or -1) on the same row. When there is none,
// from is returned with ok set to false.
func (f *Filter) NextInRow(from models.Address, dir int) (models.Address, bool) {
	for col := from.Col + dir; col >= 0 && col < f.bounds.Cols; col += dir {
		a := models.Address{Row: from.Row, Col: col}
		if f.IsEnterable(a) {
			return a, true
		}
	}
	return from, false
}

// NextInCol is the vertical counterpart of NextInRow.
func (f *Filter) NextInCol(from models.Address, dir int) (models.Address, bool) {
	for row := from.Row + dir; row >= 0 && row < f.bounds.Rows; row += dir {
		a := models.Address{Row: row, Col: from.Col}
		if f.IsEnterable(a) {
			return a, true
		}
	}
	return from, false
}
