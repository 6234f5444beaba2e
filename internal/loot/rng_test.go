package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubRNG replays fixed values, cycling when exhausted.
type stubRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *stubRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *stubRNG) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

func TestSeededRNG_Deterministic(t *testing.T) {
	a := NewSeededRNG(7)
	b := NewSeededRNG(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
}

func TestRNG_Ranges(t *testing.T) {
	sources := map[string]RandomSource{
		"seeded": NewSeededRNG(1),
		"crypto": DefaultRNG(),
	}
	for name, rng := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				f := rng.Float64()
				assert.GreaterOrEqual(t, f, 0.0)
				assert.Less(t, f, 1.0)

				n := rng.IntN(6)
				assert.GreaterOrEqual(t, n, 0)
				assert.Less(t, n, 6)
			}
			assert.Equal(t, 0, rng.IntN(1), "single choice is always index 0")
		})
	}
}
