package dataset

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"pseudocalls-go/internal/types"
)

func TestWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.xlsx")
	recs := []types.CallRecord{
		{
			CallID:   1,
			Company:  "Meridian Health Systems",
			Vertical: "Healthcare",
			CallType: types.ProblemDiscovery,
			Participants: []types.Participant{
				{Name: "Aisha Okonkwo", Role: "Solution Engineer"},
				{Name: "Kevin Nakamura", Role: "Customer Success Manager"},
				{Name: "Rachel Clark", Role: "Technical Lead"},
			},
			DurationSeconds: 623,
			DurationMinutes: 10.4,
		},
		{
			CallID:          2,
			Company:         "Atlas Financial Group",
			Vertical:        "Financial Services",
			CallType:        types.RequirementsGathering,
			Participants:    []types.Participant{{Name: "Tom Lee", Role: "Data Engineer"}},
			DurationSeconds: 540,
			DurationMinutes: 9,
		},
	}
	if err := WriteWorkbook(path, recs); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	first := got[0]
	if first.CallID != 1 || first.Vertical != "Healthcare" || first.CallType != types.ProblemDiscovery {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if len(first.Participants) != 3 || first.Participants[1].Role != "Customer Success Manager" {
		t.Fatalf("unexpected participants: %+v", first.Participants)
	}
	if first.DurationSeconds != 623 || first.DurationMinutes != 10.4 {
		t.Fatalf("unexpected durations: %d / %.1f", first.DurationSeconds, first.DurationMinutes)
	}
	if got[1].DurationMinutes != 9 {
		t.Fatalf("unexpected second duration: %.1f", got[1].DurationMinutes)
	}
}

func TestLoadRejectsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	f := excelize.NewFile()
	if err := f.SetSheetRow("Sheet1", "A1", &[]any{"call_id", "company"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := Load(path); err == nil {
		t.Fatal("expected missing column error")
	}
}
