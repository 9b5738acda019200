package aggregator

import "pseudocalls-go/internal/types"

type Insight struct {
	TotalCalls int                     `json:"total_calls"`
	ByVertical map[string]int          `json:"by_vertical"`
	ByCallType map[types.Archetype]int `json:"by_call_type"`
	AvgMinutes float64                 `json:"avg_minutes"`
	MinMinutes float64                 `json:"min_minutes"`
	MaxMinutes float64                 `json:"max_minutes"`
}

func Aggregate(records []types.CallRecord) Insight {
	ins := Insight{
		TotalCalls: len(records),
		ByVertical: map[string]int{},
		ByCallType: map[types.Archetype]int{},
	}
	total := 0.0
	for i, r := range records {
		ins.ByVertical[r.Vertical]++
		ins.ByCallType[r.CallType]++
		m := r.DurationMinutes
		total += m
		if i == 0 || m < ins.MinMinutes {
			ins.MinMinutes = m
		}
		if i == 0 || m > ins.MaxMinutes {
			ins.MaxMinutes = m
		}
	}
	if len(records) > 0 {
		ins.AvgMinutes = total / float64(len(records))
	}
	return ins
}
