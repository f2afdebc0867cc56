package store

import (
	"math/rand"
	"time"
)

// Clock supplies the wall-clock time used for comment and effect IDs. Tests
// substitute a deterministic implementation.
type Clock interface {
	Now() time.Time
}

// Rand supplies the randomness for avatar colors and effect words.
type Rand interface {
	Intn(n int) int
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

type systemRand struct{ r *rand.Rand }

func (s systemRand) Intn(n int) int { return s.r.Intn(n) }

// SystemRand returns a time-seeded randomness source.
func SystemRand() Rand {
	return systemRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}
