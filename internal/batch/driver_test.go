package batch

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"pseudocalls-go/internal/aggregator"
	"pseudocalls-go/internal/call"
	"pseudocalls-go/internal/content"
	"pseudocalls-go/internal/dialogue"
	"pseudocalls-go/internal/types"
)

var archetypes = []types.Archetype{
	types.ProblemDiscovery,
	types.RequirementsGathering,
	types.ArchitectureReview,
	types.Mixed,
}

func quietLog() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func runBatch(t *testing.T, seed uint64, n int) (Result, []string) {
	t.Helper()
	bank, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	gen := call.NewGenerator(dialogue.NewRand(seed), bank, call.WithDate(date))
	verticals := bank.VerticalNames()
	res, err := Run(gen, verticals, archetypes, n, quietLog())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return res, verticals
}

func TestRunRoundRobin(t *testing.T) {
	res, verticals := runBatch(t, 11, 50)
	if len(res.Records) != 50 || len(res.Transcripts) != 50 {
		t.Fatalf("expected 50 calls, got %d records / %d transcripts", len(res.Records), len(res.Transcripts))
	}
	for i, r := range res.Records {
		if r.CallID != i+1 {
			t.Fatalf("record %d has id %d", i, r.CallID)
		}
		if r.Vertical != verticals[i%len(verticals)] {
			t.Fatalf("call %d: vertical %s, want %s", r.CallID, r.Vertical, verticals[i%len(verticals)])
		}
		if r.CallType != archetypes[i%len(archetypes)] {
			t.Fatalf("call %d: type %s, want %s", r.CallID, r.CallType, archetypes[i%len(archetypes)])
		}
	}

	ins := aggregator.Aggregate(res.Records)
	for _, v := range verticals {
		if ins.ByVertical[v] != 10 {
			t.Fatalf("vertical %s: expected 10 calls, got %d", v, ins.ByVertical[v])
		}
	}
	// 50 over 4 types: the first two get the extra call
	want := map[types.Archetype]int{
		types.ProblemDiscovery:      13,
		types.RequirementsGathering: 13,
		types.ArchitectureReview:    12,
		types.Mixed:                 12,
	}
	for a, n := range want {
		if ins.ByCallType[a] != n {
			t.Fatalf("type %s: expected %d calls, got %d", a, n, ins.ByCallType[a])
		}
	}
}

func TestRunUnknownVertical(t *testing.T) {
	bank, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	gen := call.NewGenerator(dialogue.NewRand(1), bank)
	if _, err := Run(gen, []string{"Aerospace"}, archetypes, 3, quietLog()); err == nil {
		t.Fatal("expected error for unknown vertical")
	}
	if _, err := Run(gen, nil, archetypes, 3, quietLog()); err == nil {
		t.Fatal("expected error for empty verticals")
	}
}

func TestWriteOutputs(t *testing.T) {
	res, _ := runBatch(t, 5, 6)
	dir := filepath.Join(t.TempDir(), "out")
	txt := filepath.Join(dir, "calls.txt")
	meta := filepath.Join(dir, "calls.json")

	if err := WriteTranscripts(txt, res.Transcripts); err != nil {
		t.Fatalf("write transcripts: %v", err)
	}
	if err := WriteMetadata(meta, res.Records); err != nil {
		t.Fatalf("write metadata: %v", err)
	}

	b, err := os.ReadFile(txt)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(b), "CALL #"); got != 6 {
		t.Fatalf("expected 6 call headers, got %d", got)
	}
	if !strings.HasPrefix(string(b), strings.Repeat("=", 80)+"\nCALL #001 - ") {
		t.Fatalf("unexpected file start: %q", string(b)[:100])
	}

	raw, err := os.ReadFile(meta)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(raw, []byte("\n  {\n    \"call_id\": 1,")) {
		t.Fatalf("metadata not indented with two spaces:\n%s", raw[:120])
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode metadata: %v", err)
	}
	if len(decoded) != 6 {
		t.Fatalf("expected 6 records, got %d", len(decoded))
	}
	ps, ok := decoded[0]["participants"].([]any)
	if !ok || len(ps) < 3 {
		t.Fatalf("unexpected participants: %v", decoded[0]["participants"])
	}
	if s, _ := ps[0].(string); !strings.HasSuffix(s, ")") || !strings.Contains(s, " (") {
		t.Fatalf("participant not in Name (Role) form: %v", ps[0])
	}
}

func TestSameSeedSameFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, seed uint64) (transcripts, metadata []byte) {
		t.Helper()
		res, _ := runBatch(t, seed, 8)
		txt := filepath.Join(dir, name+".txt")
		meta := filepath.Join(dir, name+".json")
		if err := WriteTranscripts(txt, res.Transcripts); err != nil {
			t.Fatal(err)
		}
		if err := WriteMetadata(meta, res.Records); err != nil {
			t.Fatal(err)
		}
		transcripts, err := os.ReadFile(txt)
		if err != nil {
			t.Fatal(err)
		}
		metadata, err = os.ReadFile(meta)
		if err != nil {
			t.Fatal(err)
		}
		return transcripts, metadata
	}

	txtA, metaA := write("a", 99)
	txtB, metaB := write("b", 99)
	if !bytes.Equal(txtA, txtB) {
		t.Fatal("same seed and date produced different transcript files")
	}
	if !bytes.Equal(metaA, metaB) {
		t.Fatal("same seed and date produced different metadata files")
	}

	txtC, metaC := write("c", 100)
	if bytes.Equal(txtA, txtC) || bytes.Equal(metaA, metaC) {
		t.Fatal("different seeds produced identical output")
	}
}

func TestWriteMetadataEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := WriteMetadata(path, nil); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "[]" {
		t.Fatalf("expected empty array, got %q", b)
	}
}

func TestPrintSummary(t *testing.T) {
	ins := aggregator.Insight{
		TotalCalls: 3,
		ByVertical: map[string]int{"Healthcare": 2, "Retail": 1},
		ByCallType: map[types.Archetype]int{types.ProblemDiscovery: 2, types.Mixed: 1},
		AvgMinutes: 10.26,
		MinMinutes: 8.5,
		MaxMinutes: 12,
	}
	var buf bytes.Buffer
	PrintSummary(&buf, ins, []string{"Healthcare", "Retail", "Technology"}, []types.Archetype{types.ProblemDiscovery, types.Mixed})

	want := "Summary:\n" +
		"  - Healthcare: 2 calls\n" +
		"  - Retail: 1 calls\n" +
		"  - Technology: 0 calls\n" +
		"\nCall types:\n" +
		"  - Problem Discovery: 2 calls\n" +
		"  - Mixed: 1 calls\n" +
		"\nDuration stats:\n" +
		"  Average: 10.3 min\n" +
		"  Min:     8.5 min\n" +
		"  Max:     12.0 min\n"
	if buf.String() != want {
		t.Fatalf("unexpected summary:\n%s", buf.String())
	}
}
