package gacha

import "math/rand/v2"

// RandomSource yields uniform samples in [0,1). Injectable so sessions are
// reproducible under test.
type RandomSource interface {
	Float64() float64
}

type defaultSource struct{}

func (defaultSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // game randomness, not security critical
}

// DefaultSource returns the process-wide random source.
func DefaultSource() RandomSource { return defaultSource{} }

type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a reproducible source for tests and simulations.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
