package dialogue

import "math/rand/v2"

// Rand is the single source of randomness for call generation. *rand.Rand
// satisfies it; pass a seeded one for reproducible output.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Between returns a uniform int in [lo, hi].
func Between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func Choice(r Rand, items []string) string {
	return items[r.IntN(len(items))]
}

// Sample draws min(k, len(items)) distinct items in random order. items is
// not modified.
func Sample(r Rand, items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	pool := append([]string(nil), items...)
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
