package particles

import "math/rand"

// sampler is the random source behind every lifecycle resample. It wraps a
// *rand.Rand so fields (and tests) can pin a seed.
type sampler struct {
	r *rand.Rand
}

func newSampler(seed int64) *sampler {
	return &sampler{r: rand.New(rand.NewSource(seed))}
}

// between returns a uniform float in [min, max).
func (s *sampler) between(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// intBetween returns a uniform int in [min, max].
func (s *sampler) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// chance returns true with probability p.
func (s *sampler) chance(p float64) bool {
	return s.r.Float64() < p
}

// pick returns a uniformly chosen element of set.
func (s *sampler) pick(set []string) string {
	return set[s.r.Intn(len(set))]
}
