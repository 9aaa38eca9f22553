package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedUniform replays fixed uniforms and counts how many were consumed.
type scriptedUniform struct {
	values []float64
	next   int
}

func (s *scriptedUniform) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestNormalVariateSourceRejectsOutsideUnitCircle(t *testing.T) {
	// First pair maps to (0.9, 0.9): s = 1.62, rejected.
	// Second pair maps to (0.5, -0.5): s = 0.5, accepted.
	u := &scriptedUniform{values: []float64{0.95, 0.95, 0.75, 0.25}}
	n := NewNormalVariateSource(u)

	got := n.Draw()

	x, s := 0.5, 0.5
	want := x * math.Sqrt(-2*math.Log(s)/s)
	assert.Equal(t, want, got)
	assert.Equal(t, 4, u.next, "one rejected pair plus one accepted pair")
}

func TestNormalVariateSourceRejectsBoundary(t *testing.T) {
	// (1, 0) lies on the circle and must be rejected.
	u := &scriptedUniform{values: []float64{1.0, 0.5, 0.25, 0.5}}
	n := NewNormalVariateSource(u)

	got := n.Draw()

	assert.Equal(t, 4, u.next)
	x, s := -0.5, 0.25
	assert.Equal(t, x*math.Sqrt(-2*math.Log(s)/s), got)
}

func TestNormalVariateSourceMoments(t *testing.T) {
	n := NewNormalVariateSource(NewSeededUniform(7))
	const draws = 200000

	var sum, sumSq float64
	for i := 0; i < draws; i++ {
		z := n.Draw()
		require.False(t, math.IsNaN(z))
		sum += z
		sumSq += z * z
	}
	mean := sum / draws
	variance := sumSq/draws - mean*mean

	assert.InDelta(t, 0.0, mean, 0.01)
	assert.InDelta(t, 1.0, variance, 0.02)
}

func TestNormalVariateSourceDeterministicForSeed(t *testing.T) {
	a := NewNormalVariateSource(NewSeededUniform(42))
	b := NewNormalVariateSource(NewSeededUniform(42))
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Draw(), b.Draw(), "draw %d", i)
	}
}

func TestResolveSeed(t *testing.T) {
	orig := seedFunc
	defer SetSeedFunc(orig)
	SetSeedFunc(func() int64 { return 99 })

	assert.Equal(t, int64(42), ResolveSeed(42))
	assert.Equal(t, int64(99), ResolveSeed(0))
}
