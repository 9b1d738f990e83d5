package parser

import (
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts the displayed values of a sheet.
// It returns one CellRow per non-empty row.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[int]string)
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[colIdx] = cellValue
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// DetectUsedRange returns the bounding range of non-empty cells.
// ok is false when rows holds no values.
func DetectUsedRange(rows []models.CellRow) (r models.Range, ok bool) {
	r = models.Range{R1: -1, C1: -1, R2: -1, C2: -1}

	for _, row := range rows {
		for col := range row.C {
			if !ok {
				r = models.Range{R1: row.R, C1: col, R2: row.R, C2: col}
				ok = true
				continue
			}
			r.R1 = min(r.R1, row.R)
			r.R2 = max(r.R2, row.R)
			r.C1 = min(r.C1, col)
			r.C2 = max(r.C2, col)
		}
	}

	return r, ok
}
