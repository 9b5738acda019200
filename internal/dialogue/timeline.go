package dialogue

import (
	"fmt"

	"pseudocalls-go/internal/types"
)

// Pause is an inclusive range of seconds the clock advances after a line.
type Pause struct {
	Min, Max int
}

// Pauses by line role. Longer statements get longer gaps; together they put
// a typical call near ten minutes.
var (
	pauseStatement     = Pause{15, 22}
	pauseArchitecture  = Pause{14, 22}
	pauseFollowup      = Pause{12, 18}
	pauseReqOpener     = Pause{12, 16}
	pauseProblemOpener = Pause{10, 15}
	pauseActionItem    = Pause{10, 15}
	pauseNFRTransition = Pause{10, 14}
	pausePrompt        = Pause{8, 12}
	pauseAside         = Pause{6, 10}
	pauseShort         = Pause{5, 8}
)

func (p Pause) draw(r Rand) int {
	lo, hi := max(p.Min, 0), max(p.Max, 0)
	if hi < lo {
		lo, hi = hi, lo
	}
	return Between(r, lo, hi)
}

// Emit appends (t, speaker, text) to lines and returns the clock advanced by
// a pause drawn from p.
func Emit(r Rand, lines []types.DialogueLine, t int, speaker types.Participant, text string, p Pause) ([]types.DialogueLine, int) {
	lines = append(lines, types.DialogueLine{Elapsed: t, Speaker: speaker, Text: text})
	return lines, t + p.draw(r)
}

// Timestamp formats elapsed seconds as MM:SS.
func Timestamp(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
