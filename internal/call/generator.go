package call

import (
	"fmt"
	"strconv"
	"time"

	"pseudocalls-go/internal/content"
	"pseudocalls-go/internal/dialogue"
	"pseudocalls-go/internal/types"
)

const (
	minParticipants = 3
	maxParticipants = content.MaxParticipants
)

// Generator assembles whole calls from segments. It is not safe for
// concurrent use; it shares one Rand across calls.
type Generator struct {
	rng  dialogue.Rand
	bank *content.Bank
	seg  *dialogue.Segmenter
	now  func() time.Time
}

type Option func(*Generator)

// WithDate pins the date printed in transcript headers.
func WithDate(d time.Time) Option {
	return func(g *Generator) { g.now = func() time.Time { return d } }
}

func NewGenerator(r dialogue.Rand, bank *content.Bank, opts ...Option) *Generator {
	g := &Generator{
		rng:  r,
		bank: bank,
		seg:  dialogue.NewSegmenter(r, bank),
		now:  time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// GenerateCall builds one call and returns its rendered transcript and record.
func (g *Generator) GenerateCall(id int, vertical string, archetype types.Archetype) (string, types.CallRecord, error) {
	v, err := g.bank.Vertical(vertical)
	if err != nil {
		return "", types.CallRecord{}, err
	}
	plan, err := types.SegmentPlan(archetype)
	if err != nil {
		return "", types.CallRecord{}, err
	}

	company := dialogue.Choice(g.rng, g.bank.Companies)
	participants := g.roster()

	lines, t := g.seg.Opening(participants, company, 0)
	segments := []types.SegmentKind{types.SegmentOpening}
	for _, kind := range plan {
		var seg []types.DialogueLine
		switch kind {
		case types.SegmentProblem:
			seg, t = g.seg.Problem(participants, v, t)
		case types.SegmentRequirements:
			seg, t = g.seg.Requirements(participants, v, t)
		case types.SegmentArchitecture:
			seg, t = g.seg.Architecture(participants, v, t)
		}
		lines = append(lines, seg...)
		segments = append(segments, kind)
	}
	closing, _ := g.seg.Closing(participants, t)
	lines = append(lines, closing...)
	segments = append(segments, types.SegmentClosing)

	duration := lines[len(lines)-1].Elapsed
	rec := types.CallRecord{
		CallID:          id,
		Company:         company,
		Vertical:        v.Name,
		CallType:        archetype,
		Participants:    participants,
		DurationSeconds: duration,
		DurationMinutes: minutes(duration),
		Segments:        segments,
	}
	return FormatTranscript(rec, lines, g.now()), rec, nil
}

// minutes converts seconds to minutes at one decimal. Ties on the exact
// binary value round to even, so 615s is 10.2 and 627s is 10.4.
func minutes(sec int) float64 {
	m, _ := strconv.ParseFloat(strconv.FormatFloat(float64(sec)/60, 'f', 1, 64), 64)
	return m
}

// roster draws 3-5 distinct roles; the first participant hosts the call.
func (g *Generator) roster() []types.Participant {
	n := dialogue.Between(g.rng, minParticipants, maxParticipants)
	roles := dialogue.Sample(g.rng, g.bank.Roles, n)
	out := make([]types.Participant, len(roles))
	for i, role := range roles {
		out[i] = types.Participant{
			Name: fmt.Sprintf("%s %s", dialogue.Choice(g.rng, g.bank.FirstNames), dialogue.Choice(g.rng, g.bank.LastNames)),
			Role: role,
		}
	}
	return out
}
