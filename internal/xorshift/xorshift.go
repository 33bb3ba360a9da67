// Package xorshift is a 32-bit Marsaglia xorshift generator with explicit
// owned state.
package xorshift

// DefaultSeed is used when a zero seed is requested.
const DefaultSeed uint32 = 2463534242

// Source is a xorshift32 generator. Its state is never zero.
type Source struct {
	state uint32
}

func New(seed uint32) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the state. Zero would lock the generator, so it is mapped to
// DefaultSeed.
func (s *Source) Seed(seed uint32) {
	if seed == 0 {
		seed = DefaultSeed
	}
	s.state = seed
}

// Next advances the state and returns it.
func (s *Source) Next() uint32 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return x
}

// State returns the current state without advancing.
func (s *Source) State() uint32 { return s.state }
