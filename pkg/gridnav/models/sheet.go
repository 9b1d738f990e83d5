package models

import "github.com/xuri/excelize/v2"

// Bounds holds the sheet limits used to clamp cursor movement.
type Bounds struct {
	// Rows is the number of addressable rows.
	Rows int `json:"rows"`
	// Cols is the number of addressable columns.
	Cols int `json:"cols"`
}

// DefaultBounds returns the xlsx sheet limits.
func DefaultBounds() Bounds {
	return Bounds{Rows: excelize.TotalRows, Cols: excelize.MaxColumns}
}

// Contains reports whether a lies inside the sheet.
func (b Bounds) Contains(a Address) bool {
	return a.Row >= 0 && a.Col >= 0 && a.Row < b.Rows && a.Col < b.Cols
}

// LastRow returns the index of the last addressable row.
func (b Bounds) LastRow() int {
	return b.Rows - 1
}

// LastCol returns the index of the last addressable column.
func (b Bounds) LastCol() int {
	return b.Cols - 1
}

// Clamp moves a to the nearest address inside the sheet.
func (b Bounds) Clamp(a Address) Address {
	return Address{Row: clamp(a.Row, 0, b.LastRow()), Col: clamp(a.Col, 0, b.LastCol())}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SheetProtection describes the protection state read from a worksheet.
type SheetProtection struct {
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// Protected reports whether sheet protection is enabled.
	Protected bool `json:"protected"`
	// SelectLockedCells reports whether the protection forbids selecting locked cells.
	SelectLockedCells bool `json:"select_locked_cells,omitempty"`
	// SelectUnlockedCells reports whether the protection forbids selecting unlocked cells.
	SelectUnlockedCells bool `json:"select_unlocked_cells,omitempty"`
	// Unlocked lists the cells explicitly unlocked by their style, in A1 notation.
	Unlocked []string `json:"unlocked,omitempty"`
	// UnlockedRows lists rows (0-based) whose row style is unlocked.
	UnlockedRows []int `json:"unlocked_rows,omitempty"`
	// UnlockedCols lists columns (0-based) whose column style is unlocked.
	UnlockedCols []int `json:"unlocked_cols,omitempty"`
}
