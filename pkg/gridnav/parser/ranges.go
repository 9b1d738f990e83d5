package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a reference such as "C6", "C7:G7" or "$A$1:$D$10".
// An optional sheet prefix ('Sheet 1'!A1:B2) is ignored.
func ParseRange(ref string) (models.Range, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 || parts[0] == "" {
		return models.Range{}, fmt.Errorf("invalid range %q", ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	return models.Range{
		R1: min(startRow, endRow) - 1,
		C1: min(startCol, endCol) - 1,
		R2: max(startRow, endRow) - 1,
		C2: max(startCol, endCol) - 1,
	}, nil
}
