package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"pseudocalls-go/internal/types"
)

const (
	sheetName            = "Calls"
	participantSeparator = "; "
)

var header = []any{"call_id", "company", "vertical", "call_type", "participants", "duration_seconds", "duration_minutes"}

// WriteWorkbook saves call metadata as a single-sheet xlsx, one row per call.
func WriteWorkbook(path string, records []types.CallRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		names := make([]string, len(r.Participants))
		for j, p := range r.Participants {
			names[j] = p.String()
		}
		row := []any{
			r.CallID,
			r.Company,
			r.Vertical,
			string(r.CallType),
			strings.Join(names, participantSeparator),
			r.DurationSeconds,
			r.DurationMinutes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
