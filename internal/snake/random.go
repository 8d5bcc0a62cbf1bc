package snake

import "math/rand/v2"

// Random provides random numbers so ticks can be made deterministic in tests.
type Random interface {
	// IntN returns a random int in [0, n)
	IntN(n int) int
}

// GlobalRandom draws from the math/rand/v2 global source, which is safe for
// concurrent use.
type GlobalRandom struct{}

// IntN returns a random int in [0, n).
func (GlobalRandom) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}
