package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"pseudocalls-go/internal/types"
)

// Load reads call metadata back from the first sheet of a workbook. Columns
// are located by header name, so reordered or extra columns are fine.
func Load(path string) ([]types.CallRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range header {
		if _, ok := idx[h.(string)]; !ok {
			return nil, fmt.Errorf("missing column %q", h)
		}
	}
	cell := func(r []string, col string) string {
		i := idx[col]
		if i < len(r) {
			return strings.TrimSpace(r[i])
		}
		return ""
	}

	var out []types.CallRecord
	for n, r := range rows[1:] {
		line := n + 2
		rec := types.CallRecord{
			Company:  cell(r, "company"),
			Vertical: cell(r, "vertical"),
			CallType: types.Archetype(cell(r, "call_type")),
		}
		if rec.CallID, err = strconv.Atoi(cell(r, "call_id")); err != nil {
			return nil, fmt.Errorf("row %d call_id: %w", line, err)
		}
		if rec.DurationSeconds, err = strconv.Atoi(cell(r, "duration_seconds")); err != nil {
			return nil, fmt.Errorf("row %d duration_seconds: %w", line, err)
		}
		if rec.DurationMinutes, err = strconv.ParseFloat(cell(r, "duration_minutes"), 64); err != nil {
			return nil, fmt.Errorf("row %d duration_minutes: %w", line, err)
		}
		if ps := cell(r, "participants"); ps != "" {
			for _, s := range strings.Split(ps, participantSeparator) {
				var p types.Participant
				if err := p.UnmarshalText([]byte(s)); err != nil {
					return nil, fmt.Errorf("row %d: %w", line, err)
				}
				rec.Participants = append(rec.Participants, p)
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
