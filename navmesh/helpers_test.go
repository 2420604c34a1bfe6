package navmesh

import (
	"testing"

	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/halfedge"
	"github.com/stretchr/testify/require"
)

// square returns the counter-clockwise unit square with its minimum corner
// at (x, 0, z).
func square(x, z float32) []common.Vec3 {
	return []common.Vec3{{x, 0, z}, {x + 1, 0, z}, {x + 1, 0, z + 1}, {x, 0, z + 1}}
}

// rect returns the counter-clockwise rectangle spanning [x0, x1] x [z0, z1].
func rect(x0, z0, x1, z1 float32) []common.Vec3 {
	return []common.Vec3{{x0, 0, z0}, {x1, 0, z0}, {x1, 0, z1}, {x0, 0, z1}}
}

func meshOf(t *testing.T, contours ...[]common.Vec3) *halfedge.Mesh {
	t.Helper()
	m := halfedge.NewMesh()
	for _, c := range contours {
		_, err := m.AddPolygon(c)
		require.NoError(t, err)
	}
	return m
}

func unmerged() Config {
	cfg := DefaultConfig()
	cfg.MergeConvexRegions = false
	return cfg
}

// regionNodes lists the node indices exposed by a region's shared edges.
func regionNodes(n *NavMesh, r halfedge.PolygonID) map[int]bool {
	res := make(map[int]bool)
	n.Mesh.Walk(r, func(e halfedge.EdgeID) bool {
		edge := n.Mesh.Edge(e)
		if edge.Twin != halfedge.NoEdge {
			res[n.EdgeNodeIndex(e)] = true
			res[n.EdgeNodeIndex(edge.Next)] = true
		}
		return false
	})
	return res
}

// ring is a 3x3 block of unit squares with the centre square missing.
func ring(t *testing.T) *halfedge.Mesh {
	var contours [][]common.Vec3
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			if x == 1 && z == 1 {
				continue
			}
			contours = append(contours, square(float32(x), float32(z)))
		}
	}
	return meshOf(t, contours...)
}
