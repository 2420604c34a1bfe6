package navmesh

import (
	"testing"

	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/common/logger"
	"github.com/gorustyt/regionnav/halfedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildMergesRectangle(t *testing.T) {
	n := New(DefaultConfig(), nil).Build(meshOf(t, square(0, 0), square(1, 0)))

	require.Len(t, n.Regions, 1)
	r := n.Regions[0]
	assert.True(t, n.Mesh.Convex(r))
	assert.Len(t, n.Mesh.Vertices(r), 6)
	assert.Equal(t, common.Vec3{1, 0, 0.5}, n.Mesh.Polygon(r).Centroid)
	assert.Equal(t, 0, n.Graph.NodeCount(), "no shared boundary survives")
	n.Mesh.Walk(r, func(e halfedge.EdgeID) bool {
		assert.Equal(t, r, n.Mesh.Edge(e).Polygon)
		return false
	})
}

func TestBuildRollsBackConcaveMerge(t *testing.T) {
	m := meshOf(t, square(0, 0), square(1, 0), square(0, 1))
	n := New(DefaultConfig(), nil).Build(m)

	// the two bottom squares merge, the top one would make an L
	require.Len(t, n.Regions, 2)
	assert.Equal(t, []halfedge.PolygonID{0, 2}, n.Regions)
	assert.Equal(t, []common.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 0, 1}, {1, 0, 1}, {0, 0, 1}}, m.Vertices(0))
	assert.Equal(t, square(0, 1), m.Vertices(2))

	require.Equal(t, 2, n.Graph.NodeCount())
	assert.Equal(t, 2, n.Graph.EdgeCount())
	positions := []common.Vec3{}
	for _, node := range n.Graph.GetNodes() {
		positions = append(positions, node.Position)
	}
	assert.ElementsMatch(t, []common.Vec3{{1, 0, 1}, {0, 0, 1}}, positions)
}

func TestBuildWithoutMerging(t *testing.T) {
	n := New(unmerged(), nil).Build(meshOf(t, square(0, 0), square(1, 0), square(0, 1)))
	assert.Len(t, n.Regions, 3)
	// shared points (1,0) (1,1) (0,1)
	assert.Equal(t, 3, n.Graph.NodeCount())
}

func TestBuildTwinSymmetry(t *testing.T) {
	n := New(DefaultConfig(), nil).Build(ring(t))
	twins := 0
	for i, edge := range n.Mesh.Edges {
		if edge.Twin == halfedge.NoEdge {
			continue
		}
		twins++
		assert.Equal(t, halfedge.EdgeID(i), n.Mesh.Edge(edge.Twin).Twin)
		assert.Equal(t, n.Mesh.From(halfedge.EdgeID(i)), n.Mesh.To(edge.Twin))
	}
	assert.Equal(t, 2*8, twins)
}

func TestBuildRegionProperties(t *testing.T) {
	m := ring(t)
	polygons := len(m.Polygons)
	n := New(DefaultConfig(), nil).Build(m)

	assert.LessOrEqual(t, len(n.Regions), polygons)
	assert.Less(t, len(n.Regions), polygons, "some squares merge into rectangles")
	for _, r := range n.Regions {
		assert.True(t, n.Mesh.Convex(r), "region %d", r)
	}
}

func TestBuildNodeIndexStability(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), unmerged()} {
		n := New(cfg, nil).Build(ring(t))
		seen := make(map[common.Vec3]int)
		for _, r := range n.Regions {
			n.Mesh.Walk(r, func(e halfedge.EdgeID) bool {
				index := n.EdgeNodeIndex(e)
				if index == NoNode {
					return false
				}
				from := n.Mesh.From(e)
				if prev, ok := seen[from]; ok {
					assert.Equal(t, prev, index, "position %v", from)
				}
				seen[from] = index
				node, err := n.Graph.GetNode(index)
				require.NoError(t, err)
				assert.Equal(t, from, node.Position)
				return false
			})
		}
		assert.Len(t, seen, n.Graph.NodeCount())
	}
}

func TestBuildFullRegionConnectivity(t *testing.T) {
	n := New(unmerged(), nil).Build(ring(t))
	for _, r := range n.Regions {
		nodes := regionNodes(n, r)
		for a := range nodes {
			for b := range nodes {
				if a == b {
					continue
				}
				e, err := n.Graph.GetEdge(a, b)
				require.NoError(t, err)
				pa, _ := n.Graph.GetNode(a)
				pb, _ := n.Graph.GetNode(b)
				assert.Equal(t, common.Vdist(pa.Position, pb.Position), e.Cost)
				assert.True(t, n.Graph.HasEdge(b, a))
			}
		}
	}
}

func TestBuildTiesKeepEncounterOrder(t *testing.T) {
	// a row of three squares merges left to right into one rectangle
	n := New(DefaultConfig(), nil).Build(meshOf(t, square(0, 0), square(1, 0), square(2, 0)))
	require.Len(t, n.Regions, 1)
	assert.Equal(t, halfedge.PolygonID(0), n.Regions[0])
	assert.Len(t, n.Mesh.Vertices(0), 8)
}

func TestBuildPrefersLongestBoundary(t *testing.T) {
	// left shares a unit edge with block, top shares block's whole 2-long
	// upper edge. Either merge blocks the other, the longer one wins.
	left := []common.Vec3{{-1, 0, 0}, {0, 0, 0}, {0, 0, 1}, {-1, 0, 1}}
	block := []common.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 0, 1}, {0, 0, 1}}
	top := []common.Vec3{{0, 0, 1}, {2, 0, 1}, {2, 0, 2}, {0, 0, 2}}
	n := New(DefaultConfig(), nil).Build(meshOf(t, left, block, top))

	require.Equal(t, []halfedge.PolygonID{0, 1}, n.Regions)
	assert.True(t, n.Mesh.Contains(1, common.Vec3{1, 0, 1.5}, 1e-3))
	assert.Equal(t, left, n.Mesh.Vertices(0))
}

func TestBuildRejectsSlitMerge(t *testing.T) {
	// two 2x2 blocks form first; joining them through one of their two
	// shared edges would leave the other as a slit in the boundary
	m := meshOf(t, rect(0, 0, 1, 2), rect(1, 0, 2, 2), rect(0, 2, 1, 4), rect(1, 2, 2, 4))
	n := New(DefaultConfig(), nil).Build(m)

	require.Equal(t, []halfedge.PolygonID{0, 2}, n.Regions)
	for _, r := range n.Regions {
		assert.True(t, n.Mesh.Convex(r), "region %d", r)
		n.Mesh.Walk(r, func(e halfedge.EdgeID) bool {
			if twin := n.Mesh.Edge(e).Twin; twin != halfedge.NoEdge {
				assert.NotEqual(t, r, n.Mesh.Edge(twin).Polygon, "edge %d borders its own region", e)
			}
			return false
		})
	}
	assert.Equal(t, halfedge.PolygonID(0), n.RegionForPoint(common.Vec3{0.5, 0, 0.5}, 1e-3))
	assert.Equal(t, halfedge.PolygonID(2), n.RegionForPoint(common.Vec3{1.5, 0, 3.5}, 1e-3))
	assert.Equal(t, halfedge.PolygonID(2), n.RegionForPoint(common.Vec3{0.5, 0, 3}, 1e-3))
	assert.Equal(t, 3, n.Graph.NodeCount())

	end := common.Vec3{0.6, 0, 0.6}
	region, position := n.ClampMovement(0, common.Vec3{0.5, 0, 0.5}, end)
	assert.Equal(t, halfedge.PolygonID(0), region)
	assert.Equal(t, end, position)

	path := n.FindPath(common.Vec3{0.5, 0, 0.5}, common.Vec3{1.5, 0, 3.5})
	require.GreaterOrEqual(t, len(path), 3)
}

func TestBuildClearsPreviousState(t *testing.T) {
	n := New(unmerged(), nil)
	n.Build(meshOf(t, square(0, 0), square(1, 0)))
	require.Equal(t, 2, n.Graph.NodeCount())

	n.Build(meshOf(t, square(5, 5)))
	assert.Len(t, n.Regions, 1)
	assert.Equal(t, 0, n.Graph.NodeCount())

	n.Clear()
	assert.Empty(t, n.Regions)
	assert.Nil(t, n.Mesh)
	assert.Equal(t, NoNode, n.EdgeNodeIndex(0))
}

func TestBuildLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	n := New(DefaultConfig(), zap.New(core))
	n.Build(meshOf(t, square(0, 0), square(1, 0), square(0, 1)))

	built := logs.FilterMessage("navmesh built").All()
	require.Len(t, built, 1)
	fields := built[0].ContextMap()
	assert.EqualValues(t, 2, fields["regions"])
	assert.EqualValues(t, 1, fields["merged"])
	assert.Equal(t, 1, logs.FilterMessage("merge rejected").Len())

	assert.NotNil(t, logger.OrNop(nil))
}
