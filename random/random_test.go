package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/random"
)

// TestNew_ZeroSeedUsesDefault locks the seed==0 policy.
func TestNew_ZeroSeedUsesDefault(t *testing.T) {
	assert.Equal(t, random.DefaultSeed, random.New(0).Seed())
	assert.Equal(t, int64(42), random.New(42).Seed())
}

// TestSource_Determinism checks that two sources with one seed draw identical streams.
func TestSource_Determinism(t *testing.T) {
	a, b := random.New(7), random.New(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int(1000), b.Int(1000), "draw %d", i)
	}
}

func TestSource_IntBounds(t *testing.T) {
	src := random.New(3)
	for i := 0; i < 500; i++ {
		v := src.Int(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Panics(t, func() { src.Int(0) })
	assert.Panics(t, func() { src.Int(-2) })
}

// TestSource_RangeInclusive verifies both argument orders and that both ends are reachable.
func TestSource_RangeInclusive(t *testing.T) {
	src := random.New(11)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := src.Range(4, 2)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 9, src.Range(9, 9))
}

func TestChoice(t *testing.T) {
	src := random.New(5)

	_, ok := random.Choice(src, []int{})
	assert.False(t, ok)

	v, ok := random.Choice(src, []string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", v)

	items := []int{10, 20, 30}
	for i := 0; i < 50; i++ {
		v, ok := random.Choice(src, items)
		require.True(t, ok)
		assert.Contains(t, items, v)
	}
}

// TestShuffle_Permutation checks Shuffle returns the same backing slice holding the same multiset.
func TestShuffle_Permutation(t *testing.T) {
	src := random.New(9)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	out := random.Shuffle(src, items)

	assert.Same(t, &items[0], &out[0])
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, out)
	assert.Empty(t, random.Shuffle(src, []int{}))
}
