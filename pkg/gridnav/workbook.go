package gridnav

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/engine"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/grid"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is one sheet of an xlsx file loaded for navigation. It implements
// engine.ProtectionQuery.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// SheetName is the loaded sheet.
	SheetName string
	// Protection is the sheet's protection state.
	Protection *parser.Protection
	// Rows holds the sheet's non-empty values.
	Rows []models.CellRow

	values map[models.Address]string
	opts   Options
}

// Open loads the protection state and values of one sheet of an xlsx file.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "", "workbook", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, NewLoadError(path, sheetName, "workbook", ErrSheetNotFound)
	}

	rows, err := parser.ExtractCells(f, sheetName)
	if err != nil {
		return nil, NewLoadError(path, sheetName, "cells", err)
	}

	styleLocks, err := parser.StyleLocks(f)
	if err != nil {
		return nil, NewLoadError(path, sheetName, "protection", err)
	}
	protection, err := parser.ReadProtection(path, sheetName, styleLocks)
	if err != nil {
		return nil, NewLoadError(path, sheetName, "protection", err)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("workbook loaded", "path", path, "sheet", sheetName,
			"protected", protection.SheetProtected(), "rows", len(rows))
	}

	return NewWorkbook(filepath.Base(path), sheetName, protection, rows, opts), nil
}

// NewWorkbook assembles a Workbook from already loaded state.
func NewWorkbook(bookName, sheetName string, protection *parser.Protection, rows []models.CellRow, opts Options) *Workbook {
	if protection == nil {
		protection = parser.NewProtection(false)
	}
	w := &Workbook{
		BookName:   bookName,
		SheetName:  sheetName,
		Protection: protection,
		Rows:       rows,
		values:     make(map[models.Address]string),
		opts:       opts,
	}
	for _, row := range rows {
		for col, v := range row.C {
			w.values[models.Address{Row: row.R, Col: col}] = v
		}
	}
	return w
}

// SheetProtected reports whether the sheet is protected.
func (w *Workbook) SheetProtected() bool {
	return w.Protection.SheetProtected()
}

// CellLocked reports whether the cell at a is locked.
func (w *Workbook) CellLocked(a models.Address) bool {
	return w.Protection.CellLocked(a)
}

// Value returns the displayed value of the cell at a.
func (w *Workbook) Value(a models.Address) string {
	return w.values[a]
}

// UsedRange returns the bounding range of non-empty cells.
func (w *Workbook) UsedRange() (models.Range, bool) {
	return parser.DetectUsedRange(w.Rows)
}

// NewView returns a fresh navigation view with the cursor at start.
func (w *Workbook) NewView(start models.Address) *grid.View {
	return grid.NewView(engine.New(w, w.opts.EngineOptions()), start)
}

// Replay presses keys in order on a fresh view starting at start.
func (w *Workbook) Replay(start models.Address, keys []models.Key) models.Trace {
	trace := Replay(w.NewView(start), keys)
	trace.BookName = w.BookName
	trace.SheetName = w.SheetName
	return trace
}

// Replay presses keys in order on v and records every step.
func Replay(v *grid.View, keys []models.Key) models.Trace {
	trace := models.Trace{
		RunID: uuid.NewString(),
		Start: v.Cursor(),
		Steps: make([]models.Step, 0, len(keys)),
	}
	for _, k := range keys {
		trace.Steps = append(trace.Steps, v.Press(k))
	}
	return trace
}
