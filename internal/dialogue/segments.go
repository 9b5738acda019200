package dialogue

import (
	"pseudocalls-go/internal/content"
	"pseudocalls-go/internal/types"
)

const (
	problemsPerSegment    = 2
	requirementsPerKind   = 4
	minArchitecturePoints = 12
	maxArchitecturePoints = 16
	clarificationProb     = 0.4
	minActionItems        = 3
	maxActionItems        = 4
)

// Segmenter produces the dialogue for each phase of a call. Every method
// takes the running clock and returns its lines plus the advanced clock.
// participants[0] is the host; callers guarantee at least two participants.
type Segmenter struct {
	rng  Rand
	bank *content.Bank
}

func NewSegmenter(r Rand, bank *content.Bank) *Segmenter {
	return &Segmenter{rng: r, bank: bank}
}

func (s *Segmenter) say(lines []types.DialogueLine, t int, who types.Participant, text string, p Pause) ([]types.DialogueLine, int) {
	return Emit(s.rng, lines, t, who, s.bank.Render(text, nil), p)
}

func (s *Segmenter) pick(candidates []types.Participant, last *types.Participant) types.Participant {
	return PickSpeaker(s.rng, candidates, last)
}

func (s *Segmenter) Opening(participants []types.Participant, company string, start int) ([]types.DialogueLine, int) {
	host := participants[0]
	script := s.bank.Script
	var lines []types.DialogueLine
	t := start

	greeting := s.bank.Render(script.Greeting, content.Vars{"host": host.Name, "company": company})
	lines, t = Emit(s.rng, lines, t, host, greeting, pausePrompt)
	lines, t = s.say(lines, t, host, script.IntroRound, pauseAside)

	for _, p := range participants[1:] {
		intro := s.bank.Render(Choice(s.rng, s.bank.Phrases.Intros), content.Vars{
			"name":    p.Name,
			"role":    p.Role,
			"company": company,
		})
		lines, t = Emit(s.rng, lines, t, p, intro, pauseShort)
	}

	lines, t = s.say(lines, t, host, script.Agenda, pausePrompt)
	affirmer := s.pick(participants[1:], nil)
	lines, t = s.say(lines, t, affirmer, script.Affirmation, pauseAside)
	lines, t = s.say(lines, t, host, script.Kickoff, pauseShort)
	return lines, t
}

func (s *Segmenter) Problem(participants []types.Participant, v content.Vertical, start int) ([]types.DialogueLine, int) {
	ph := s.bank.Phrases
	var lines []types.DialogueLine
	t := start

	lines, t = s.say(lines, t, participants[0], s.bank.Script.ProblemOpener, pauseProblemOpener)

	problems := Sample(s.rng, v.Problems, problemsPerSegment)
	var last *types.Participant
	for i, problem := range problems {
		speaker := s.pick(participants[1:], last)
		last = &speaker
		lines, t = s.say(lines, t, speaker, problem, pauseStatement)

		questioner := s.pick(participants, &speaker)
		lines, t = s.say(lines, t, questioner, Choice(s.rng, ph.ProblemFollowups), pauseFollowup)

		responder := s.pick(participants, &questioner)
		lines, t = s.say(lines, t, responder, Choice(s.rng, ph.ImpactResponses), pauseStatement)

		connector := s.pick(participants, &responder)
		lines, t = s.say(lines, t, connector, Choice(s.rng, ph.Bridges), pauseFollowup)

		if i < len(problems)-1 {
			next := s.pick(participants, &connector)
			lines, t = s.say(lines, t, next, s.bank.Script.ProblemTransition, pausePrompt)
		}
	}
	return lines, t
}

func (s *Segmenter) Requirements(participants []types.Participant, v content.Vertical, start int) ([]types.DialogueLine, int) {
	host := participants[0]
	ph := s.bank.Phrases
	var lines []types.DialogueLine
	t := start

	lines, t = s.say(lines, t, host, s.bank.Script.RequirementsOpener, pauseReqOpener)
	lines, t = s.say(lines, t, host, s.bank.Script.FunctionalPrompt, pausePrompt)

	var last *types.Participant
	discuss := func(reqs, replies []string) {
		for _, req := range reqs {
			speaker := s.pick(participants[1:], last)
			last = &speaker
			lines, t = s.say(lines, t, speaker, req, pauseStatement)

			discusser := s.pick(participants, &speaker)
			lines, t = s.say(lines, t, discusser, Choice(s.rng, replies), pauseFollowup)
		}
	}

	discuss(Sample(s.rng, v.FunctionalReqs, requirementsPerKind), ph.RequirementDiscussions)

	transitioner := s.pick(participants, nil)
	lines, t = s.say(lines, t, transitioner, s.bank.Script.NonfunctionalTransition, pauseNFRTransition)

	discuss(Sample(s.rng, v.NonfunctionalReqs, requirementsPerKind), ph.NFRDiscussions)
	return lines, t
}

func (s *Segmenter) Architecture(participants []types.Participant, v content.Vertical, start int) ([]types.DialogueLine, int) {
	var lines []types.DialogueLine
	t := start

	vars := content.Vars{
		"concern":  Choice(s.rng, v.Concerns),
		"use_case": Choice(s.rng, v.UseCases),
	}
	points := s.bank.RenderAll(s.bank.Phrases.ArchitecturePoints, vars)
	s.rng.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
	n := min(Between(s.rng, minArchitecturePoints, maxArchitecturePoints), len(points))

	var last *types.Participant
	for _, point := range points[:n] {
		speaker := s.pick(participants, last)
		last = &speaker
		lines, t = Emit(s.rng, lines, t, speaker, point, pauseArchitecture)

		if s.rng.Float64() < clarificationProb {
			responder := s.pick(participants, &speaker)
			lines, t = s.say(lines, t, responder, Choice(s.rng, s.bank.Phrases.Clarifications), pauseFollowup)
		}
	}
	return lines, t
}

func (s *Segmenter) Closing(participants []types.Participant, start int) ([]types.DialogueLine, int) {
	host := participants[0]
	var lines []types.DialogueLine
	t := start

	lines, t = s.say(lines, t, host, s.bank.Script.ClosingSummary, pausePrompt)

	n := Between(s.rng, minActionItems, maxActionItems)
	for _, item := range Sample(s.rng, s.bank.Phrases.ActionItems, n) {
		lines, t = s.say(lines, t, s.pick(participants, nil), item, pauseActionItem)
	}

	lines, t = s.say(lines, t, host, s.bank.Script.FinalQuestions, pausePrompt)
	closer := s.pick(participants[1:], nil)
	lines, t = s.say(lines, t, closer, Choice(s.rng, s.bank.Phrases.ClosingRemarks), pauseAside)
	lines, t = s.say(lines, t, host, s.bank.Script.SignOff, pauseShort)
	return lines, t
}
