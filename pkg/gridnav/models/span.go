package models

// Span is the row and column range remembered from the most recent tab episode.
type Span struct {
	// StartRow is the row the episode began on (0-based).
	StartRow int `json:"start_row"`
	// StartCol is the leftmost column visited (0-based, inclusive).
	StartCol int `json:"start_col"`
	// EndCol is the rightmost column visited (0-based, inclusive).
	EndCol int `json:"end_col"`
}

// Valid reports whether the span is well formed.
func (s Span) Valid() bool {
	return s.StartRow >= 0 && s.StartCol >= 0 && s.StartCol <= s.EndCol
}

// Contains reports whether col falls within the span's column range.
func (s Span) Contains(col int) bool {
	return col >= s.StartCol && col <= s.EndCol
}

// Range is a rectangular block of cells with zero-based inclusive bounds.
type Range struct {
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row (inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (inclusive).
	C2 int `json:"c2"`
}

// String returns the range in A1 notation, e.g. "C6:G7".
func (r Range) String() string {
	start := Address{Row: r.R1, Col: r.C1}.String()
	end := Address{Row: r.R2, Col: r.C2}.String()
	if start == end {
		return start
	}
	return start + ":" + end
}
