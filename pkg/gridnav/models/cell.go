// Package models defines the value types shared by the navigation engine,
// the workbook parser and the command line.
package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Address is a zero-based cell coordinate.
type Address struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// ParseAddress parses an A1-style reference such as "C6" into a zero-based Address.
func ParseAddress(ref string) (Address, error) {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return Address{}, fmt.Errorf("invalid cell reference %q: %w", ref, err)
	}
	return Address{Row: row - 1, Col: col - 1}, nil
}

// MustParseAddress is like ParseAddress but panics on error. Intended for tests and constants.
func MustParseAddress(ref string) Address {
	a, err := ParseAddress(ref)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the A1-style name of the cell, or "R{row}C{col}" when the
// address is outside the range excelize can name.
func (a Address) String() string {
	name, err := excelize.CoordinatesToCellName(a.Col+1, a.Row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", a.Row, a.Col)
	}
	return name
}

// CellRow represents a single row of non-empty display values.
type CellRow struct {
	// R is the row index (0-based).
	R int `json:"r"`
	// C maps column index (0-based) to the displayed cell text.
	C map[int]string `json:"c"`
}
