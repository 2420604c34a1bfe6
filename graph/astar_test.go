package graph

import (
	"testing"

	"github.com/gorustyt/regionnav/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds a digraph over the given positions with symmetric Euclidean
// edges for each listed pair.
func grid(t *testing.T, positions []common.Vec3, pairs [][2]int) *Graph {
	t.Helper()
	g := New(true)
	for i, p := range positions {
		require.NoError(t, g.AddNode(&Node{Index: i, Position: p}))
	}
	for _, p := range pairs {
		cost := common.Vdist(positions[p[0]], positions[p[1]])
		require.NoError(t, g.AddEdge(&Edge{From: p[0], To: p[1], Cost: cost}))
		require.NoError(t, g.AddEdge(&Edge{From: p[1], To: p[0], Cost: cost}))
	}
	return g
}

func TestAStarShortestPath(t *testing.T) {
	//  0 --- 1 --- 2
	//  |           |
	//  3 --------- 4 (detour is longer)
	positions := []common.Vec3{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 0, 3}, {2, 0, 3},
	}
	g := grid(t, positions, [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 4}, {4, 2}})

	a := NewAStar(g, 0, 2).Search()
	require.True(t, a.Found)
	assert.Equal(t, []int{0, 1, 2}, a.Path())
	assert.Equal(t, float32(2), a.Cost())

	a = NewAStar(g, 3, 1).Search()
	require.True(t, a.Found)
	assert.Equal(t, []int{3, 0, 1}, a.Path())
}

func TestAStarSourceIsTarget(t *testing.T) {
	g := grid(t, []common.Vec3{{0, 0, 0}}, nil)
	a := NewAStar(g, 0, 0).Search()
	require.True(t, a.Found)
	assert.Equal(t, []int{0}, a.Path())
}

func TestAStarNoPath(t *testing.T) {
	g := grid(t, []common.Vec3{{0, 0, 0}, {1, 0, 0}, {5, 0, 0}}, [][2]int{{0, 1}})
	a := NewAStar(g, 0, 2).Search()
	assert.False(t, a.Found)
	assert.Nil(t, a.Path())

	a = NewAStar(g, 0, 42).Search()
	assert.False(t, a.Found)
	a = NewAStar(g, -1, 0).Search()
	assert.False(t, a.Found)
}

func TestAStarRespectsDirection(t *testing.T) {
	g := New(true)
	_ = g.AddNode(&Node{Index: 0})
	_ = g.AddNode(&Node{Index: 1, Position: common.Vec3{1, 0, 0}})
	_ = g.AddEdge(&Edge{From: 0, To: 1, Cost: 1})

	assert.True(t, NewAStar(g, 0, 1).Search().Found)
	assert.False(t, NewAStar(g, 1, 0).Search().Found)
}

func TestAStarClear(t *testing.T) {
	g := grid(t, []common.Vec3{{0, 0, 0}, {1, 0, 0}}, [][2]int{{0, 1}})
	a := NewAStar(g, 0, 1).Search()
	require.True(t, a.Found)
	a.Clear()
	assert.False(t, a.Found)
	assert.Nil(t, a.Path())

	// the cleared search can run again
	a.Source, a.Target = 1, 0
	require.True(t, a.Search().Found)
	assert.Equal(t, []int{1, 0}, a.Path())
}
