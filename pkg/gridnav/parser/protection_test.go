package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/xuri/excelize/v2"
)

// writeProtectedForm saves a protected workbook shaped like a data entry
// form: C6, E6, G6 and C7:G7 unlocked, column J and row 10 unlocked by style.
func writeProtectedForm(t *testing.T, protect bool) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	unlocked, err := f.NewStyle(&excelize.Style{Protection: &excelize.Protection{Locked: false}})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	for _, cells := range [][2]string{{"C6", "C6"}, {"E6", "E6"}, {"G6", "G6"}, {"C7", "G7"}} {
		if err := f.SetCellStyle(sheetName, cells[0], cells[1], unlocked); err != nil {
			t.Fatalf("Failed to style %s:%s: %v", cells[0], cells[1], err)
		}
	}
	if err := f.SetColStyle(sheetName, "J", unlocked); err != nil {
		t.Fatalf("Failed to style column: %v", err)
	}
	if err := f.SetRowStyle(sheetName, 10, 10, unlocked); err != nil {
		t.Fatalf("Failed to style row: %v", err)
	}
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "B6", "Entry")

	if protect {
		if err := f.ProtectSheet(sheetName, &excelize.SheetProtectionOptions{SelectUnlockedCells: true}); err != nil {
			t.Fatalf("Failed to protect sheet: %v", err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "form.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

// readProtection loads the style table with excelize and then the protection
// state of sheetName.
func readProtection(t *testing.T, path, sheetName string) (*Protection, error) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	locks, err := StyleLocks(f)
	if err != nil {
		t.Fatalf("StyleLocks failed: %v", err)
	}
	return ReadProtection(path, sheetName, locks)
}

func TestReadProtection(t *testing.T) {
	path := writeProtectedForm(t, true)

	p, err := readProtection(t, path, "Sheet1")
	if err != nil {
		t.Fatalf("ReadProtection failed: %v", err)
	}
	if !p.SheetProtected() {
		t.Fatalf("Expected sheet to be protected")
	}

	tests := []struct {
		cell   string
		locked bool
	}{
		{"C6", false},
		{"D6", true},
		{"E6", false},
		{"F6", true},
		{"G6", false},
		{"C7", false},
		{"G7", false},
		{"H7", true},
		{"A1", true},
		{"B6", true},
		{"J3", false},
		{"A10", false},
		{"C29", true},
	}

	for _, tt := range tests {
		result := p.CellLocked(models.MustParseAddress(tt.cell))
		if result != tt.locked {
			t.Errorf("CellLocked(%s) = %v, expected %v", tt.cell, result, tt.locked)
		}
	}
}

func TestReadProtectionUnprotected(t *testing.T) {
	path := writeProtectedForm(t, false)

	p, err := readProtection(t, path, "Sheet1")
	if err != nil {
		t.Fatalf("ReadProtection failed: %v", err)
	}
	if p.SheetProtected() {
		t.Errorf("Expected sheet to be unprotected")
	}
	if p.CellLocked(models.MustParseAddress("C6")) {
		t.Errorf("Expected C6 to keep its unlocked style")
	}
}

func TestReadProtectionMissingSheet(t *testing.T) {
	path := writeProtectedForm(t, true)

	if _, err := readProtection(t, path, "Nope"); err == nil {
		t.Errorf("Expected error for missing sheet")
	}
}

func TestProtectionReport(t *testing.T) {
	p := NewProtection(true)
	p.UnlockRange(models.Range{R1: 6, C1: 3, R2: 6, C2: 4})
	p.SetCellLocked(models.MustParseAddress("C6"), false)
	p.SetCellLocked(models.MustParseAddress("A1"), true)
	p.SetRowLocked(9, false)
	p.SetColLocked(2, false)
	p.SetColLocked(5, true)

	report := p.Report("Form")
	expected := models.SheetProtection{
		SheetName:    "Form",
		Protected:    true,
		Unlocked:     []string{"C6", "D7", "E7"},
		UnlockedRows: []int{9},
		UnlockedCols: []int{2},
	}
	if !reflect.DeepEqual(report, expected) {
		t.Errorf("Report() = %+v, expected %+v", report, expected)
	}
}

func TestProtectionPrecedence(t *testing.T) {
	p := NewProtection(true)
	p.SetColLocked(1, false)
	p.SetRowLocked(4, true)
	p.SetCellLocked(models.Address{Row: 4, Col: 1}, false)

	tests := []struct {
		addr   models.Address
		locked bool
	}{
		{models.Address{Row: 0, Col: 1}, false}, // column style
		{models.Address{Row: 4, Col: 3}, true},  // row style wins over default
		{models.Address{Row: 4, Col: 2}, true},
		{models.Address{Row: 4, Col: 1}, false}, // cell style wins over row style
		{models.Address{Row: 0, Col: 0}, true},  // default
	}

	for _, tt := range tests {
		if result := p.CellLocked(tt.addr); result != tt.locked {
			t.Errorf("CellLocked(%v) = %v, expected %v", tt.addr, result, tt.locked)
		}
	}
}

func TestStyleLocks(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	unlocked, err := f.NewStyle(&excelize.Style{Protection: &excelize.Protection{Locked: false}})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	locked, err := f.NewStyle(&excelize.Style{Protection: &excelize.Protection{Locked: true}})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}

	result, err := StyleLocks(f)
	if err != nil {
		t.Fatalf("StyleLocks failed: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("StyleLocks() returned %d styles, expected 3", len(result))
	}
	if !result[0] {
		t.Errorf("Expected default style to be locked")
	}
	if result[unlocked] {
		t.Errorf("Expected style %d to be unlocked", unlocked)
	}
	if !result[locked] {
		t.Errorf("Expected style %d to be locked", locked)
	}
}

func TestStyleLocksMalformed(t *testing.T) {
	path := writeProtectedForm(t, true)
	broken := filepath.Join(t.TempDir(), "broken.xlsx")
	replacePart(t, path, broken, stylesPart, []byte(`<styleSheet><cellXfs count="1"><xf`))

	f, err := excelize.OpenFile(broken)
	if err == nil {
		defer f.Close()
		_, err = StyleLocks(f)
	}
	if err == nil {
		t.Errorf("Expected error for malformed styles part")
	}
}

// replacePart copies the xlsx at src to dst with the named part replaced.
func replacePart(t *testing.T, src, dst, name string, data []byte) {
	t.Helper()

	zr, err := zip.OpenReader(src)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", src, err)
	}
	defer zr.Close()

	out, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", dst, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range zr.File {
		w, err := zw.Create(file.Name)
		if err != nil {
			t.Fatalf("Failed to write %s: %v", file.Name, err)
		}
		if file.Name == name {
			_, err = w.Write(data)
		} else {
			var content []byte
			content, err = openPart(&zr.Reader, file.Name)
			if err == nil {
				_, err = w.Write(content)
			}
		}
		if err != nil {
			t.Fatalf("Failed to copy %s: %v", file.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish %s: %v", dst, err)
	}
}

func TestParseWorksheetProtectionImplicitRows(t *testing.T) {
	sheet := []byte(`<worksheet><sheetData>` +
		`<row><c s="1"/></row>` +
		`<row><c/><c s="1"/></row>` +
		`<row r="5" customFormat="1" s="1"><c r="B5"/></row>` +
		`<row><c s="1"/></row>` +
		`</sheetData></worksheet>`)

	p := NewProtection(true)
	if err := parseWorksheetProtection(sheet, []bool{true, false}, p); err != nil {
		t.Fatalf("parseWorksheetProtection failed: %v", err)
	}

	tests := []struct {
		cell   string
		locked bool
	}{
		{"A1", false},
		{"A2", true},
		{"B2", false},
		{"A5", false}, // row style
		{"B5", true},  // cell style wins over row style
		{"A6", false},
		{"A7", true},
	}

	for _, tt := range tests {
		if result := p.CellLocked(models.MustParseAddress(tt.cell)); result != tt.locked {
			t.Errorf("CellLocked(%s) = %v, expected %v", tt.cell, result, tt.locked)
		}
	}
}

func TestParseWorksheetProtectionMalformed(t *testing.T) {
	p := NewProtection(false)
	if err := parseWorksheetProtection([]byte(`<worksheet><sheetData><row>`), nil, p); err == nil {
		t.Errorf("Expected error for truncated worksheet")
	}
}

func TestSheetPartName(t *testing.T) {
	path := writeProtectedForm(t, true)

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer zr.Close()

	name, err := sheetPartName(&zr.Reader, "Sheet1")
	if err != nil {
		t.Fatalf("sheetPartName failed: %v", err)
	}
	if name != "xl/worksheets/sheet1.xml" {
		t.Errorf("sheetPartName() = %q, expected %q", name, "xl/worksheets/sheet1.xml")
	}
	if _, err := sheetPartName(&zr.Reader, "Nope"); err == nil {
		t.Errorf("Expected error for missing sheet")
	}
}

func TestPartName(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{"../xl/worksheets/sheet3.xml", "xl/worksheets/sheet3.xml"},
		{"./worksheets/../worksheets/sheet4.xml", "xl/worksheets/sheet4.xml"},
	}

	for _, tt := range tests {
		result := partName("xl", tt.target)
		if result != tt.expected {
			t.Errorf("partName(%q) = %q, expected %q", tt.target, result, tt.expected)
		}
	}
}
