package call

import (
	"fmt"
	"strings"
	"time"

	"pseudocalls-go/internal/dialogue"
	"pseudocalls-go/internal/types"
)

var banner = strings.Repeat("=", 80)

// FormatTranscript renders the header block followed by every line as
// "[MM:SS] Name (Role):" and its text, each block ending in a blank line.
func FormatTranscript(rec types.CallRecord, lines []types.DialogueLine, date time.Time) string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "CALL #%03d - %s (%s)\n", rec.CallID, rec.Company, rec.Vertical)
	fmt.Fprintf(&b, "Date: %s\n", date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Duration: ~%d minutes\n", rec.DurationSeconds/60)
	fmt.Fprintf(&b, "Participants: %d\n", len(rec.Participants))
	fmt.Fprintf(&b, "Call Type: %s\n", rec.CallType.Label())
	b.WriteString(banner + "\n\n")

	for _, l := range lines {
		fmt.Fprintf(&b, "[%s] %s:\n%s\n\n", dialogue.Timestamp(l.Elapsed), l.Speaker, l.Text)
	}
	return b.String()
}
