package navmesh

import (
	"slices"

	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/graph"
	"github.com/gorustyt/regionnav/halfedge"
)

// ClosestNodeIndex returns the graph node nearest to point, or NoNode if the
// graph is empty.
func (n *NavMesh) ClosestNodeIndex(point common.Vec3) int {
	best := NoNode
	minDistance := common.MaxFloat32
	for _, node := range n.Graph.GetNodes() {
		d := common.VdistSqr(point, node.Position)
		if d < minDistance {
			minDistance = d
			best = node.Index
		}
	}
	return best
}

// ClosestNodeIndexInRegion returns the node on the boundary of region nearest
// to point. When target is set its squared distance is added to the score,
// which favours nodes lying towards the target.
func (n *NavMesh) ClosestNodeIndexInRegion(point common.Vec3, region halfedge.PolygonID, target *common.Vec3) int {
	if region == halfedge.NoPolygon || n.Mesh == nil {
		return NoNode
	}
	m := n.Mesh
	best := NoNode
	minDistance := common.MaxFloat32
	m.Walk(region, func(e halfedge.EdgeID) bool {
		edge := m.Edge(e)
		index := NoNode
		if edge.Twin != halfedge.NoEdge {
			index = n.edgeNodes[e]
		} else if prevTwin := m.Edge(edge.Prev).Twin; prevTwin != halfedge.NoEdge {
			index = n.edgeNodes[prevTwin]
		}
		position, ok := n.nodePosition(index)
		if !ok {
			return false
		}
		d := common.VdistSqr(point, position)
		if target != nil {
			d += common.VdistSqr(*target, position)
		}
		if d < minDistance {
			minDistance = d
			best = index
		}
		return false
	})
	return best
}

// ClosestRegion returns the region whose centroid is nearest to point.
func (n *NavMesh) ClosestRegion(point common.Vec3) halfedge.PolygonID {
	best := halfedge.NoPolygon
	minDistance := common.MaxFloat32
	for _, r := range n.Regions {
		d := common.VdistSqr(point, n.Mesh.Polygon(r).Centroid)
		if d < minDistance {
			minDistance = d
			best = r
		}
	}
	return best
}

// RegionForPoint returns the first region containing point within epsilon.
func (n *NavMesh) RegionForPoint(point common.Vec3, epsilon float32) halfedge.PolygonID {
	for _, r := range n.Regions {
		if n.Mesh.Contains(r, point, epsilon) {
			return r
		}
	}
	return halfedge.NoPolygon
}

// FindPath returns the waypoints from from to to, both included verbatim.
// An empty result means there is no path.
func (n *NavMesh) FindPath(from, to common.Vec3) []common.Vec3 {
	epsilon := n.cfg.EpsilonContainsTest
	fromRegion := n.RegionForPoint(from, epsilon)
	if fromRegion == halfedge.NoPolygon {
		fromRegion = n.ClosestRegion(from)
	}
	toRegion := n.RegionForPoint(to, epsilon)
	if toRegion == halfedge.NoPolygon {
		toRegion = n.ClosestRegion(to)
	}
	if fromRegion == halfedge.NoPolygon || toRegion == halfedge.NoPolygon {
		return nil
	}

	// straight movement inside one convex region is always valid
	if fromRegion == toRegion {
		return []common.Vec3{from, to}
	}

	source := n.ClosestNodeIndexInRegion(from, fromRegion, &to)
	target := n.ClosestNodeIndexInRegion(to, toRegion, &from)
	astar := graph.NewAStar(n.Graph, source, target).Search()
	if !astar.Found {
		return nil
	}

	nodePath := n.trimHead(astar.Path(), fromRegion)
	nodePath = n.trimTail(nodePath, toRegion)

	path := make([]common.Vec3, 0, len(nodePath)+2)
	path = append(path, from)
	for _, index := range nodePath {
		position, _ := n.nodePosition(index)
		path = append(path, position)
	}
	return append(path, to)
}

// trimHead drops the leading nodes that lie inside region, keeping the last
// of them.
func (n *NavMesh) trimHead(nodePath []int, region halfedge.PolygonID) []int {
	inside := len(nodePath)
	for i, index := range nodePath {
		position, _ := n.nodePosition(index)
		if !n.Mesh.Contains(region, position, n.cfg.EpsilonContainsTest) {
			inside = i
			break
		}
	}
	if inside > 1 {
		nodePath = nodePath[inside-1:]
	}
	return nodePath
}

// trimTail is trimHead applied from the end of the path.
func (n *NavMesh) trimTail(nodePath []int, region halfedge.PolygonID) []int {
	reversed := slices.Clone(nodePath)
	slices.Reverse(reversed)
	reversed = n.trimHead(reversed, region)
	slices.Reverse(reversed)
	return reversed
}
