package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/pathgraph/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_Empty(t *testing.T) {
	f := frontier.New[string](0)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Len())
	_, _, ok := f.ExtractMin()
	assert.False(t, ok)
	_, _, ok = f.Peek()
	assert.False(t, ok)

	var zero frontier.Frontier[int]
	zero.Insert(1, 1)
	item, _, ok := zero.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 1, item)
}

func TestFrontier_OrdersByPriority(t *testing.T) {
	f := frontier.New[string](4)
	f.Insert("c", 3)
	f.Insert("a", 1)
	f.Insert("d", 4)
	f.Insert("b", 2)

	var got []string
	for !f.IsEmpty() {
		item, _, ok := f.ExtractMin()
		require.True(t, ok)
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

// TestFrontier_StableTies: equal priorities leave in insertion order.
func TestFrontier_StableTies(t *testing.T) {
	f := frontier.New[string](0)
	f.Insert("x", 5)
	f.Insert("first", 2)
	f.Insert("second", 2)
	f.Insert("third", 2)
	f.Insert("zero", 0)

	var got []string
	for !f.IsEmpty() {
		item, _, _ := f.ExtractMin()
		got = append(got, item)
	}
	assert.Equal(t, []string{"zero", "first", "second", "third", "x"}, got)
}

// TestFrontier_Duplicates: the same item may be queued several times.
func TestFrontier_Duplicates(t *testing.T) {
	f := frontier.New[string](0)
	f.Insert("B", 9)
	f.Insert("B", 3)
	assert.Equal(t, 2, f.Len())

	item, p, _ := f.ExtractMin()
	assert.Equal(t, "B", item)
	assert.Equal(t, 3.0, p)
	item, p, _ = f.ExtractMin()
	assert.Equal(t, "B", item)
	assert.Equal(t, 9.0, p)
}

func TestFrontier_CloneIsIndependent(t *testing.T) {
	f := frontier.New[int](0)
	f.Insert(1, 1)
	f.Insert(2, 2)
	c := f.Clone()

	_, _, _ = f.ExtractMin()
	f.Insert(0, 0)

	assert.Equal(t, 2, c.Len())
	item, _, _ := c.ExtractMin()
	assert.Equal(t, 1, item)
	item, _, _ = f.ExtractMin()
	assert.Equal(t, 0, item)
}

// TestFrontier_MatchesStableSort compares against sort.SliceStable on
// random input with many ties.
func TestFrontier_MatchesStableSort(t *testing.T) {
	type pair struct {
		id int
		p  float64
	}
	r := rand.New(rand.NewSource(7))
	const n = 500
	pairs := make([]pair, n)
	f := frontier.New[int](n)
	for i := range pairs {
		pairs[i] = pair{id: i, p: float64(r.Intn(20))}
		f.Insert(i, pairs[i].p)
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].p < pairs[j].p })

	for _, want := range pairs {
		id, p, ok := f.ExtractMin()
		require.True(t, ok)
		require.Equal(t, want.id, id)
		require.Equal(t, want.p, p)
	}
	assert.True(t, f.IsEmpty())
}
