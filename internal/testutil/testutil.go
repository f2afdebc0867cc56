// Package testutil provides deterministic clock and randomness fakes plus a
// seeded store for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/Joule-J/joules-comic-blog--1/internal/seed"
	"github.com/Joule-J/joules-comic-blog--1/internal/store"
)

// Clock is a deterministic store.Clock. Every Now call returns the current
// instant and then advances by Step, so consecutive IDs never collide.
type Clock struct {
	Current time.Time
	Step    time.Duration
}

// NewClock returns a Clock starting at a fixed instant, stepping 1ms.
func NewClock() *Clock {
	return &Clock{
		Current: time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC),
		Step:    time.Millisecond,
	}
}

// Now implements store.Clock.
func (c *Clock) Now() time.Time {
	t := c.Current
	c.Current = c.Current.Add(c.Step)
	return t
}

// Rand is a deterministic store.Rand cycling through Values.
type Rand struct {
	Values []int
	next   int
}

// Intn implements store.Rand. Values are reduced modulo n so any fixture
// value stays in range.
func (r *Rand) Intn(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v % n
}

// SeedData loads the embedded seed records, failing the test on error.
func SeedData(t *testing.T) *seed.Data {
	t.Helper()
	d, err := seed.Default()
	if err != nil {
		t.Fatalf("load embedded seed: %v", err)
	}
	return d
}

// NewStore builds a store over the embedded seed records with deterministic
// clock and randomness.
func NewStore(t *testing.T) (*store.Store, *Clock, *Rand) {
	t.Helper()
	d := SeedData(t)
	clock := NewClock()
	rnd := &Rand{Values: []int{0}}
	st := store.New(store.Options{
		Posts:    d.Posts,
		Comments: d.Comments,
		Videos:   d.Videos,
		Config:   d.Config,
		Clock:    clock,
		Rand:     rnd,
	})
	return st, clock, rnd
}
