package pong

import "math/rand"

// RandomSource supplies the coin flips used when serving.
type RandomSource interface {
	// Bool returns true or false with equal probability.
	Bool() bool
}

// seededRandom adapts math/rand to RandomSource.
type seededRandom struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource seeded for reproducible serves.
func NewRandomSource(seed int64) RandomSource {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) Bool() bool {
	return r.rng.Intn(2) == 1
}

// randomSign returns -1 or +1.
func randomSign(rs RandomSource) float64 {
	if rs.Bool() {
		return 1
	}
	return -1
}
