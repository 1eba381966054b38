package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	assert.Equal(t, a.Ints(32, 100), b.Ints(32, 100))
	assert.Equal(t, int64(4711), a.Seed())
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Ints(16, 1000)
	rng.Reset()
	assert.Equal(t, first, rng.Ints(16, 1000))
}

func TestRNG_Ints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Ints(64, 10)

	assert.Len(t, v, 64)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 10)
	}
}

func TestPoints(t *testing.T) {
	packed := Points(3)
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, packed)

	refs := PointRefs(3)
	assert.Len(t, refs, 3)
	assert.NotSame(t, refs[0], refs[1])
	assert.Equal(t, Point{X: 2, Y: 2}, *refs[2])
}

func TestEqualPointRefs(t *testing.T) {
	a := &Point{X: 1, Y: 2}
	b := &Point{X: 1, Y: 2}
	c := &Point{X: 2, Y: 1}

	assert.True(t, EqualPointRefs(a, b))
	assert.False(t, EqualPointRefs(a, c))
	assert.False(t, EqualPointRefs(a, nil))
	assert.True(t, EqualPointRefs(nil, nil))
}
