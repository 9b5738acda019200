// Package content holds the static banks that generated calls are built from:
// verticals, roster pools, fixed facilitator lines and phrase banks.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

type Vertical struct {
	Name              string   `yaml:"name"`
	Concerns          []string `yaml:"concerns"`
	UseCases          []string `yaml:"use_cases"`
	Problems          []string `yaml:"problems"`
	FunctionalReqs    []string `yaml:"functional_reqs"`
	NonfunctionalReqs []string `yaml:"nonfunctional_reqs"`
}

// Script is the set of fixed lines spoken at known points of every call.
type Script struct {
	Greeting                string `yaml:"greeting"`
	IntroRound              string `yaml:"intro_round"`
	Agenda                  string `yaml:"agenda"`
	Affirmation             string `yaml:"affirmation"`
	Kickoff                 string `yaml:"kickoff"`
	ProblemOpener           string `yaml:"problem_opener"`
	ProblemTransition       string `yaml:"problem_transition"`
	RequirementsOpener      string `yaml:"requirements_opener"`
	FunctionalPrompt        string `yaml:"functional_prompt"`
	NonfunctionalTransition string `yaml:"nonfunctional_transition"`
	ClosingSummary          string `yaml:"closing_summary"`
	FinalQuestions          string `yaml:"final_questions"`
	SignOff                 string `yaml:"sign_off"`
}

type Phrases struct {
	Intros                 []string `yaml:"intros"`
	ProblemFollowups       []string `yaml:"problem_followups"`
	ImpactResponses        []string `yaml:"impact_responses"`
	Bridges                []string `yaml:"bridges"`
	RequirementDiscussions []string `yaml:"requirement_discussions"`
	NFRDiscussions         []string `yaml:"nfr_discussions"`
	ArchitecturePoints     []string `yaml:"architecture_points"`
	Clarifications         []string `yaml:"clarifications"`
	ActionItems            []string `yaml:"action_items"`
	ClosingRemarks         []string `yaml:"closing_remarks"`
}

// Bank is read-only after Load.
type Bank struct {
	Product    string     `yaml:"product"`
	Roles      []string   `yaml:"roles"`
	Companies  []string   `yaml:"companies"`
	FirstNames []string   `yaml:"first_names"`
	LastNames  []string   `yaml:"last_names"`
	Archetypes []string   `yaml:"archetypes"`
	Verticals  []Vertical `yaml:"verticals"`
	Script     Script     `yaml:"script"`
	Phrases    Phrases    `yaml:"phrases"`
}

// MaxParticipants is the largest roster a call can have.
const MaxParticipants = 5

// Load parses the banks compiled into the binary.
func Load() (*Bank, error) {
	return parse(embedded, "embedded content")
}

// LoadFile parses a replacement content file with the same layout as the
// embedded one.
func LoadFile(path string) (*Bank, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return parse(b, path)
}

func parse(b []byte, src string) (*Bank, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var bank Bank
	if err := dec.Decode(&bank); err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return &bank, nil
}

// Validate checks that every bank a call draws from is usable.
func (b *Bank) Validate() error {
	if len(b.Roles) < MaxParticipants {
		return fmt.Errorf("need at least %d roles, have %d", MaxParticipants, len(b.Roles))
	}
	lists := []struct {
		name  string
		items []string
	}{
		{"companies", b.Companies},
		{"first_names", b.FirstNames},
		{"last_names", b.LastNames},
		{"archetypes", b.Archetypes},
		{"phrases.intros", b.Phrases.Intros},
		{"phrases.problem_followups", b.Phrases.ProblemFollowups},
		{"phrases.impact_responses", b.Phrases.ImpactResponses},
		{"phrases.bridges", b.Phrases.Bridges},
		{"phrases.requirement_discussions", b.Phrases.RequirementDiscussions},
		{"phrases.nfr_discussions", b.Phrases.NFRDiscussions},
		{"phrases.architecture_points", b.Phrases.ArchitecturePoints},
		{"phrases.clarifications", b.Phrases.Clarifications},
		{"phrases.action_items", b.Phrases.ActionItems},
		{"phrases.closing_remarks", b.Phrases.ClosingRemarks},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			return fmt.Errorf("%s is empty", l.name)
		}
	}
	if len(b.Verticals) == 0 {
		return fmt.Errorf("no verticals")
	}
	seen := map[string]bool{}
	for _, v := range b.Verticals {
		if v.Name == "" {
			return fmt.Errorf("vertical with empty name")
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate vertical %q", v.Name)
		}
		seen[v.Name] = true
		if len(v.Concerns) == 0 || len(v.UseCases) == 0 || len(v.Problems) == 0 ||
			len(v.FunctionalReqs) == 0 || len(v.NonfunctionalReqs) == 0 {
			return fmt.Errorf("vertical %q has an empty bank", v.Name)
		}
	}
	return nil
}

func (b *Bank) Vertical(name string) (Vertical, error) {
	for _, v := range b.Verticals {
		if v.Name == name {
			return v, nil
		}
	}
	return Vertical{}, fmt.Errorf("unknown vertical %q", name)
}

// VerticalNames lists verticals in file order; round-robin assignment
// depends on this order.
func (b *Bank) VerticalNames() []string {
	out := make([]string, len(b.Verticals))
	for i, v := range b.Verticals {
		out[i] = v.Name
	}
	return out
}

// Vars are the placeholder values substituted by Render.
type Vars map[string]string

// Render expands {key} placeholders. {product} is always available;
// unknown placeholders are left as-is.
func (b *Bank) Render(text string, vars Vars) string {
	if !strings.Contains(text, "{") {
		return text
	}
	pairs := []string{"{product}", b.Product}
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// RenderAll applies Render to each item.
func (b *Bank) RenderAll(items []string, vars Vars) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = b.Render(s, vars)
	}
	return out
}
