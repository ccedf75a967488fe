package world

// RNG is a small deterministic xorshift64 generator. Level generation must
// produce the same room for the same seed on every platform, so it does not
// use math/rand.
type RNG struct {
	state uint64
}

// NewRNG creates a generator. A zero seed is replaced by a fixed constant
// since xorshift never leaves the all-zero state.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 88172645463325252
	}
	return &RNG{state: s}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
