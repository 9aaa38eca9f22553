package calculation

import (
	"math"
	"math/rand"
)

// UniformSource yields uniform variates in [0, 1).
type UniformSource interface {
	Float64() float64
}

// Normal yields standard normal variates one at a time.
type Normal interface {
	Draw() float64
}

// NewSeededUniform returns an owned generator seeded once with seed.
func NewSeededUniform(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NormalVariateSource turns a uniform source into standard normals with the
// polar rejection method. It is not safe for concurrent use: every Draw
// advances the underlying uniform source.
type NormalVariateSource struct {
	uniform UniformSource
}

// NewNormalVariateSource wraps u. The caller keeps ownership of u.
func NewNormalVariateSource(u UniformSource) *NormalVariateSource {
	return &NormalVariateSource{uniform: u}
}

// Draw returns one standard normal variate. Points are drawn in the square
// (-1, 1)^2 until one falls strictly inside the unit circle; only the x
// coordinate is transformed, the y companion is discarded.
//
// s == 0 would need both uniforms to land exactly on 0.5 and is treated as
// unreachable; it yields NaN rather than being special-cased.
func (n *NormalVariateSource) Draw() float64 {
	var x, y, s float64
	for {
		x = 2.0*n.uniform.Float64() - 1.0
		y = 2.0*n.uniform.Float64() - 1.0
		s = float64(x*x) + float64(y*y)
		if s < 1.0 {
			break
		}
	}
	return x * math.Sqrt(-2.0*math.Log(s)/s)
}
