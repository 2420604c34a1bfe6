package navmesh

import (
	"cmp"
	"slices"
	"time"

	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/graph"
	"github.com/gorustyt/regionnav/halfedge"
	"go.uber.org/zap"
)

// twinCandidate is a shared boundary that may be removed by merging the two
// polygons on either side of it.
type twinCandidate struct {
	edge halfedge.EdgeID
	cost float32 // squared length
}

type segmentKey struct {
	from, to common.Vec3
}

// Build links twins, merges polygons into convex regions and builds the
// navigation graph. The mesh is modified in place and owned by the NavMesh
// until the next Build or Clear.
func (n *NavMesh) Build(mesh *halfedge.Mesh) *NavMesh {
	start := time.Now()
	n.Clear()
	n.Mesh = mesh

	var edges []halfedge.EdgeID
	for i := range mesh.Polygons {
		p := halfedge.PolygonID(i)
		mesh.Walk(p, func(e halfedge.EdgeID) bool {
			edges = append(edges, e)
			return false
		})
		n.Regions = append(n.Regions, p)
	}

	candidates := n.linkTwins(edges)
	// longest shared boundary first, ties keep encounter order
	slices.SortStableFunc(candidates, func(a, b twinCandidate) int {
		return cmp.Compare(b.cost, a.cost)
	})

	merged := 0
	if n.cfg.MergeConvexRegions {
		for _, c := range candidates {
			if n.merge(c.edge) {
				merged++
			}
		}
	}
	for _, r := range n.Regions {
		mesh.ComputeCentroid(r)
	}

	n.assignNodeIndices()
	n.buildGraph()

	n.log.Debug("navmesh built",
		zap.Int("polygons", len(mesh.Polygons)),
		zap.Int("twins", len(candidates)),
		zap.Int("merged", merged),
		zap.Int("regions", len(n.Regions)),
		zap.Int("nodes", n.Graph.NodeCount()),
		zap.Int("edges", n.Graph.EdgeCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return n
}

// linkTwins pairs every edge without a twin with the first unpaired edge
// running the opposite way between the same two positions.
func (n *NavMesh) linkTwins(edges []halfedge.EdgeID) []twinCandidate {
	m := n.Mesh
	bySegment := make(map[segmentKey][]halfedge.EdgeID, len(edges))
	for _, e := range edges {
		k := segmentKey{m.From(e), m.To(e)}
		bySegment[k] = append(bySegment[k], e)
	}

	var candidates []twinCandidate
	for _, e := range edges {
		if m.Edge(e).Twin != halfedge.NoEdge {
			continue
		}
		for _, other := range bySegment[segmentKey{m.To(e), m.From(e)}] {
			if other == e || m.Edge(other).Twin != halfedge.NoEdge {
				continue
			}
			m.LinkTwin(e, other)
			candidates = append(candidates, twinCandidate{edge: e, cost: m.SquaredLength(e)})
			break
		}
	}
	return candidates
}

// merge splices the cycle of the candidate's twin into the candidate's own
// cycle. The result is kept only if it is convex, otherwise the previous
// linkage is restored exactly.
func (n *NavMesh) merge(candidate halfedge.EdgeID) bool {
	m := n.Mesh
	twin := m.Edge(candidate).Twin
	polygon := m.Edge(candidate).Polygon
	obsolete := m.Edge(twin).Polygon
	if polygon == obsolete {
		return false
	}

	prev, next := m.Edge(candidate).Prev, m.Edge(candidate).Next
	prevTwin, nextTwin := m.Edge(twin).Prev, m.Edge(twin).Next
	first := m.Polygon(polygon).Edge

	m.Edge(prev).Next = nextTwin
	m.Edge(next).Prev = prevTwin
	m.Edge(prevTwin).Next = next
	m.Edge(nextTwin).Prev = prev
	m.Polygon(polygon).Edge = prev

	if m.Convex(polygon) {
		m.Walk(polygon, func(e halfedge.EdgeID) bool {
			m.Edge(e).Polygon = polygon
			return false
		})
		if i := slices.Index(n.Regions, obsolete); i >= 0 {
			n.Regions = slices.Delete(n.Regions, i, i+1)
		}
		return true
	}

	m.Edge(prev).Next = candidate
	m.Edge(next).Prev = candidate
	m.Edge(prevTwin).Next = twin
	m.Edge(nextTwin).Prev = twin
	m.Polygon(polygon).Edge = first
	n.log.Debug("merge rejected", zap.Int32("edge", int32(candidate)))
	return false
}

// assignNodeIndices gives every twin-bearing edge the node index of its start
// position and shares it with the edge that starts at the same position on
// the other side of the boundary.
func (n *NavMesh) assignNodeIndices() {
	m := n.Mesh
	n.edgeNodes = make([]int, len(m.Edges))
	for i := range n.edgeNodes {
		n.edgeNodes[i] = NoNode
	}
	for _, r := range n.Regions {
		m.Walk(r, func(e halfedge.EdgeID) bool {
			edge := m.Edge(e)
			if edge.Twin == halfedge.NoEdge {
				return false
			}
			index := n.nodeIndex(edge.Vertex)
			n.edgeNodes[e] = index
			n.edgeNodes[m.Edge(edge.Twin).Next] = index
			return false
		})
	}
}

func (n *NavMesh) nodeIndex(position common.Vec3) int {
	if index, ok := n.positions[position]; ok {
		return index
	}
	index := len(n.positions)
	n.positions[position] = index
	return index
}

// buildGraph fully connects the nodes exposed by each region.
func (n *NavMesh) buildGraph() {
	m := n.Mesh
	for _, r := range n.Regions {
		var indices []int
		expose := func(index int, position common.Vec3) {
			if index == NoNode || slices.Contains(indices, index) {
				return
			}
			if !n.Graph.HasNode(index) {
				_ = n.Graph.AddNode(&graph.Node{Index: index, Position: position})
			}
			indices = append(indices, index)
		}
		m.Walk(r, func(e halfedge.EdgeID) bool {
			edge := m.Edge(e)
			if edge.Twin == halfedge.NoEdge {
				return false
			}
			expose(n.edgeNodes[e], edge.Vertex)
			expose(n.edgeNodes[edge.Next], m.To(e))
			return false
		})

		for _, from := range indices {
			for _, to := range indices {
				if from == to || n.Graph.HasEdge(from, to) {
					continue
				}
				a, _ := n.nodePosition(from)
				b, _ := n.nodePosition(to)
				_ = n.Graph.AddEdge(&graph.Edge{From: from, To: to, Cost: common.Vdist(a, b)})
			}
		}
	}
}
