package engine

// RNG is a small deterministic generator whose whole state is one word, so
// snapshots can record it.
type RNG struct {
	state uint64
}

// NewRNG seeds a generator. A zero seed is replaced with 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next returns the next 64-bit value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Sign returns -1 or +1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}

// State returns the generator state.
func (r *RNG) State() uint64 {
	return r.state
}
