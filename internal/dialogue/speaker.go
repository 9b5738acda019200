package dialogue

import "pseudocalls-go/internal/types"

const avoidRepeatProb = 0.7

// PickSpeaker chooses a speaker, usually not last. With two or fewer
// candidates repetition is always allowed.
func PickSpeaker(r Rand, candidates []types.Participant, last *types.Participant) types.Participant {
	if last != nil && len(candidates) > 2 && r.Float64() < avoidRepeatProb {
		others := make([]types.Participant, 0, len(candidates))
		for _, c := range candidates {
			if c != *last {
				others = append(others, c)
			}
		}
		if len(others) > 0 {
			return others[r.IntN(len(others))]
		}
	}
	return candidates[r.IntN(len(candidates))]
}
