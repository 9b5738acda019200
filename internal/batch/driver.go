package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"pseudocalls-go/internal/aggregator"
	"pseudocalls-go/internal/call"
	"pseudocalls-go/internal/types"
)

// Result holds the output of one batch, in call order.
type Result struct {
	Transcripts []string
	Records     []types.CallRecord
}

// Run generates n calls with ids 1..n, cycling through verticals and
// archetypes independently.
func Run(gen *call.Generator, verticals []string, archetypes []types.Archetype, n int, log logrus.FieldLogger) (Result, error) {
	if len(verticals) == 0 || len(archetypes) == 0 {
		return Result{}, fmt.Errorf("need at least one vertical and one archetype")
	}
	res := Result{
		Transcripts: make([]string, 0, n),
		Records:     make([]types.CallRecord, 0, n),
	}
	for id := 1; id <= n; id++ {
		v := verticals[(id-1)%len(verticals)]
		a := archetypes[(id-1)%len(archetypes)]
		log.WithFields(logrus.Fields{"call_id": id, "vertical": v, "call_type": a}).
			Infof("Generating call %d/%d (%s - %s)", id, n, v, a)

		transcript, rec, err := gen.GenerateCall(id, v, a)
		if err != nil {
			return Result{}, fmt.Errorf("call %d: %w", id, err)
		}
		res.Transcripts = append(res.Transcripts, transcript)
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// WriteTranscripts writes all transcripts to one file, each followed by a
// blank-line separator.
func WriteTranscripts(path string, transcripts []string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transcripts: %w", err)
	}
	defer f.Close()
	for _, t := range transcripts {
		if _, err := io.WriteString(f, t+"\n\n"); err != nil {
			return fmt.Errorf("write transcripts: %w", err)
		}
	}
	return f.Close()
}

// WriteMetadata writes the records as an indented JSON array.
func WriteMetadata(path string, records []types.CallRecord) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if records == nil {
		records = []types.CallRecord{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// PrintSummary prints per-vertical and per-type counts and duration stats.
// Verticals and archetypes are listed in the order given.
func PrintSummary(w io.Writer, ins aggregator.Insight, verticals []string, archetypes []types.Archetype) {
	fmt.Fprintln(w, "Summary:")
	for _, v := range verticals {
		fmt.Fprintf(w, "  - %s: %d calls\n", v, ins.ByVertical[v])
	}
	fmt.Fprintln(w, "\nCall types:")
	for _, a := range archetypes {
		fmt.Fprintf(w, "  - %s: %d calls\n", a.Label(), ins.ByCallType[a])
	}
	fmt.Fprintln(w, "\nDuration stats:")
	fmt.Fprintf(w, "  Average: %.1f min\n", ins.AvgMinutes)
	fmt.Fprintf(w, "  Min:     %.1f min\n", ins.MinMinutes)
	fmt.Fprintf(w, "  Max:     %.1f min\n", ins.MaxMinutes)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
