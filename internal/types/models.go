package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Participant is one person on a call. Its text form is "Name (Role)", which
// is also how it appears in transcripts and JSON metadata.
type Participant struct {
	Name string
	Role string
}

func (p Participant) String() string {
	return p.Name + " (" + p.Role + ")"
}

func (p Participant) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Participant) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	i := strings.LastIndex(s, " (")
	if i < 0 || !strings.HasSuffix(s, ")") {
		return fmt.Errorf("participant %q: want \"Name (Role)\"", s)
	}
	p.Name = s[:i]
	p.Role = s[i+2 : len(s)-1]
	return nil
}

// DialogueLine is a single utterance; Elapsed is seconds since call start.
type DialogueLine struct {
	Elapsed int
	Speaker Participant
	Text    string
}

type Archetype string

const (
	ProblemDiscovery      Archetype = "problem_discovery"
	RequirementsGathering Archetype = "requirements_gathering"
	ArchitectureReview    Archetype = "architecture_review"
	Mixed                 Archetype = "mixed"
)

// Label renders the archetype for humans: "problem_discovery" -> "Problem Discovery".
func (a Archetype) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(a), "_", " "))
}

type SegmentKind string

const (
	SegmentOpening      SegmentKind = "opening"
	SegmentProblem      SegmentKind = "problem"
	SegmentRequirements SegmentKind = "requirements"
	SegmentArchitecture SegmentKind = "architecture"
	SegmentClosing      SegmentKind = "closing"
)

// SegmentPlan returns the body segments for an archetype, in call order.
// Opening and closing wrap every plan and are not listed.
func SegmentPlan(a Archetype) ([]SegmentKind, error) {
	switch a {
	case ProblemDiscovery:
		return []SegmentKind{SegmentProblem, SegmentArchitecture}, nil
	case RequirementsGathering:
		return []SegmentKind{SegmentProblem, SegmentRequirements}, nil
	case ArchitectureReview:
		return []SegmentKind{SegmentArchitecture, SegmentRequirements}, nil
	case Mixed:
		return []SegmentKind{SegmentProblem, SegmentRequirements, SegmentArchitecture}, nil
	}
	return nil, fmt.Errorf("unknown call archetype %q", a)
}

type CallRecord struct {
	CallID          int           `json:"call_id"`
	Company         string        `json:"company"`
	Vertical        string        `json:"vertical"`
	CallType        Archetype     `json:"call_type"`
	Participants    []Participant `json:"participants"`
	DurationSeconds int           `json:"duration_seconds"`
	DurationMinutes float64       `json:"duration_minutes"`

	// Segments is the full segment order, opening and closing included.
	Segments []SegmentKind `json:"-"`
}
