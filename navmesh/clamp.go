package navmesh

import (
	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/halfedge"
)

// ClampMovement keeps a move from start to end on the mesh. If end lies in
// a region that region and end are returned. Otherwise the move is turned
// into a slide along the nearest hull segment of current; if the slide
// cannot be kept on the mesh the agent stays at start.
//
// current must be a valid region whenever end is off the mesh.
func (n *NavMesh) ClampMovement(current halfedge.PolygonID, start, end common.Vec3) (halfedge.PolygonID, common.Vec3) {
	epsilon := n.cfg.EpsilonContainsTest
	if region := n.RegionForPoint(end, epsilon); region != halfedge.NoPolygon {
		return region, end
	}
	common.AssertTrue(current != halfedge.NoPolygon, "navmesh: clamp movement needs a current region")

	segment, ok := n.slideSegment(current, start)
	if !ok {
		return current, start
	}

	movement := end.Sub(start)
	edgeDirection := common.Vnormalize(segment.Delta())
	f := edgeDirection.Dot(common.Vnormalize(movement))
	clamped := segment.ClosestPoint(start).Add(edgeDirection.Mul(f * movement.Len()))

	t := segment.ClosestPointParameter(clamped, false)
	if t >= 0 && t <= 1 {
		return current, clamped
	}
	if region := n.RegionForPoint(clamped, epsilon); region != halfedge.NoPolygon {
		return region, clamped
	}
	return current, start
}

// slideSegment picks the hull segment of region the agent at start slides
// along. The nearest vertex touching a hull segment is found first; of the
// hull segments meeting there the nearer one wins, ties go to the one
// ending at the vertex.
func (n *NavMesh) slideSegment(region halfedge.PolygonID, start common.Vec3) (common.Segment, bool) {
	m := n.Mesh
	closest := halfedge.NoEdge
	minDistance := common.MaxFloat32
	m.Walk(region, func(e halfedge.EdgeID) bool {
		edge := m.Edge(e)
		if edge.Twin != halfedge.NoEdge && m.Edge(edge.Prev).Twin != halfedge.NoEdge {
			return false
		}
		d := common.VdistSqr(start, edge.Vertex)
		if d < minDistance {
			minDistance = d
			closest = e
		}
		return false
	})
	if closest == halfedge.NoEdge {
		return common.Segment{}, false
	}

	prev := m.Edge(closest).Prev
	current := common.NewSegment(m.From(closest), m.To(closest))
	previous := common.NewSegment(m.From(prev), m.To(prev))
	switch {
	case m.Edge(closest).Twin != halfedge.NoEdge:
		return previous, true
	case m.Edge(prev).Twin != halfedge.NoEdge:
		return current, true
	}
	if previous.DistanceSqr(start) <= current.DistanceSqr(start) {
		return previous, true
	}
	return current, true
}
