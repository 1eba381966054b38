package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0,maxVal).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Point is an integer pair used as a list element in tests and examples.
type Point struct {
	X, Y int
}

// Equal reports whether both coordinates match.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Points returns n points (i, i) stored by value.
func Points(n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{X: i, Y: i}
	}
	return out
}

// PointRefs returns n separately allocated points (i, i).
func PointRefs(n int) []*Point {
	out := make([]*Point, n)
	for i := range out {
		out[i] = &Point{X: i, Y: i}
	}
	return out
}

// EqualPointRefs compares two point references field by field.
func EqualPointRefs(a, b *Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
