package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/xuri/excelize/v2"
)

const stylesPart = "xl/styles.xml"

// Protection is the protection state of one worksheet. Cells are locked
// unless their cell, row or column style says otherwise, in that order of
// precedence. The zero value is an unprotected sheet with every cell locked.
type Protection struct {
	protected           bool
	selectLockedCells   bool
	selectUnlockedCells bool
	unlockedByDefault   bool
	cells               map[models.Address]bool
	rows                map[int]bool
	cols                map[int]bool
}

// NewProtection returns a Protection with every cell locked.
func NewProtection(protected bool) *Protection {
	return &Protection{
		protected: protected,
		cells:     make(map[models.Address]bool),
		rows:      make(map[int]bool),
		cols:      make(map[int]bool),
	}
}

// SheetProtected reports whether sheet protection is enabled.
func (p *Protection) SheetProtected() bool {
	return p.protected
}

// SetProtected enables or disables sheet protection.
func (p *Protection) SetProtected(protected bool) {
	p.protected = protected
}

// CellLocked reports whether the cell at a is locked.
func (p *Protection) CellLocked(a models.Address) bool {
	if locked, ok := p.cells[a]; ok {
		return locked
	}
	if locked, ok := p.rows[a.Row]; ok {
		return locked
	}
	if locked, ok := p.cols[a.Col]; ok {
		return locked
	}
	return !p.unlockedByDefault
}

// SetCellLocked sets the lock flag of a single cell.
func (p *Protection) SetCellLocked(a models.Address, locked bool) {
	if p.cells == nil {
		p.cells = make(map[models.Address]bool)
	}
	p.cells[a] = locked
}

// SetRowLocked sets the lock flag carried by a row style.
func (p *Protection) SetRowLocked(row int, locked bool) {
	if p.rows == nil {
		p.rows = make(map[int]bool)
	}
	p.rows[row] = locked
}

// SetColLocked sets the lock flag carried by a column style.
func (p *Protection) SetColLocked(col int, locked bool) {
	if p.cols == nil {
		p.cols = make(map[int]bool)
	}
	p.cols[col] = locked
}

// UnlockRange clears the lock flag of every cell in r.
func (p *Protection) UnlockRange(r models.Range) {
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			p.SetCellLocked(models.Address{Row: row, Col: col}, false)
		}
	}
}

// Report summarizes the protection state for output.
func (p *Protection) Report(sheetName string) models.SheetProtection {
	report := models.SheetProtection{
		SheetName:           sheetName,
		Protected:           p.protected,
		SelectLockedCells:   p.selectLockedCells,
		SelectUnlockedCells: p.selectUnlockedCells,
	}

	var cells []models.Address
	for a, locked := range p.cells {
		if !locked {
			cells = append(cells, a)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	for _, a := range cells {
		report.Unlocked = append(report.Unlocked, a.String())
	}
	report.UnlockedRows = unlockedKeys(p.rows)
	report.UnlockedCols = unlockedKeys(p.cols)
	return report
}

func unlockedKeys(m map[int]bool) []int {
	var keys []int
	for k, locked := range m {
		if !locked {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	return keys
}

// StyleLocks returns the locked flag of every cell style of f, by style
// index. Styles without protection settings are locked.
func StyleLocks(f *excelize.File) ([]bool, error) {
	if _, ok := f.Pkg.Load(stylesPart); !ok {
		return nil, nil
	}
	var locks []bool
	for i := 0; ; i++ {
		style, err := f.GetStyle(i)
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("read cell styles: %w", err)
			}
			return locks, nil
		}
		locks = append(locks, style.Protection == nil || style.Protection.Locked)
	}
}

// ReadProtection reads the protection state of sheetName from an xlsx file.
// styleLocks comes from StyleLocks on the same workbook.
func ReadProtection(xlsxPath, sheetName string, styleLocks []bool) (*Protection, error) {
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	name, err := sheetPartName(&zr.Reader, sheetName)
	if err != nil {
		return nil, err
	}
	data, err := openPart(&zr.Reader, name)
	if err != nil {
		return nil, err
	}

	p := NewProtection(false)
	p.unlockedByDefault = !styleLocked(styleLocks, 0)
	if err := parseWorksheetProtection(data, styleLocks, p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return p, nil
}

// styleLocked reports the locked flag of style index s. Unknown styles are locked.
func styleLocked(styleLocks []bool, s int) bool {
	if s < 0 || s >= len(styleLocks) {
		return true
	}
	return styleLocks[s]
}

// parseWorksheetProtection records sheetProtection and the column, row and
// cell style references of a worksheet part into p.
func parseWorksheetProtection(data []byte, styleLocks []bool, p *Protection) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	row, col := -1, -1

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "sheetProtection":
			p.protected = parseBool(attrValue(se, "sheet"), false)
			p.selectLockedCells = parseBool(attrValue(se, "selectLockedCells"), false)
			p.selectUnlockedCells = parseBool(attrValue(se, "selectUnlockedCells"), false)

		case "col":
			style := attrValue(se, "style")
			if style == "" {
				continue
			}
			lo, err1 := strconv.Atoi(attrValue(se, "min"))
			hi, err2 := strconv.Atoi(attrValue(se, "max"))
			s, err3 := strconv.Atoi(style)
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}
			hi = min(hi, excelize.MaxColumns)
			for c := lo; c <= hi; c++ {
				p.SetColLocked(c-1, styleLocked(styleLocks, s))
			}

		case "row":
			if r, err := strconv.Atoi(attrValue(se, "r")); err == nil {
				row = r - 1
			} else {
				row++
			}
			col = -1
			if !parseBool(attrValue(se, "customFormat"), false) {
				continue
			}
			if s, err := strconv.Atoi(attrValue(se, "s")); err == nil {
				p.SetRowLocked(row, styleLocked(styleLocks, s))
			}

		case "c":
			a := models.Address{Row: row, Col: col + 1}
			if ref := attrValue(se, "r"); ref != "" {
				if parsed, err := models.ParseAddress(ref); err == nil {
					a = parsed
				}
			}
			col = a.Col
			s := 0
			if v := attrValue(se, "s"); v != "" {
				if parsed, err := strconv.Atoi(v); err == nil {
					s = parsed
				}
			}
			p.SetCellLocked(a, styleLocked(styleLocks, s))
		}
	}
}

// attrValue returns the value of the attribute with the given local name.
func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// parseBool parses OOXML boolean attributes ("1", "0", "true", "false").
func parseBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
