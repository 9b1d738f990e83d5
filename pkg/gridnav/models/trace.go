package models

// Step records one key press and the cursor it produced.
type Step struct {
	// Key is the key that was pressed.
	Key Key `json:"key"`
	// From is the cursor before the key was applied.
	From Address `json:"from"`
	// To is the cursor after the key was applied.
	To Address `json:"to"`
	// Cell is To in A1 notation.
	Cell string `json:"cell"`
	// Span is the active span after the key, if any.
	Span *Span `json:"span,omitempty"`
}

// Trace is the outcome of replaying a key sequence against a sheet.
type Trace struct {
	// RunID uniquely identifies the replay.
	RunID string `json:"run_id"`
	// BookName is the workbook file name (no path), empty for in-memory sheets.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the sheet the keys were replayed against.
	SheetName string `json:"sheet_name,omitempty"`
	// Start is the initial cursor.
	Start Address `json:"start"`
	// Steps holds one entry per key.
	Steps []Step `json:"steps"`
}

// Final returns the cursor after the last step, or Start when there are no steps.
func (t Trace) Final() Address {
	if len(t.Steps) == 0 {
		return t.Start
	}
	return t.Steps[len(t.Steps)-1].To
}
