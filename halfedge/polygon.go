package halfedge

import (
	"math"

	"github.com/gorustyt/regionnav/common"
)

// Convex reports whether every consecutive vertex triple of the boundary of
// p turns the same way on the xz-plane. Collinear triples are accepted unless
// the boundary doubles back on itself there.
func (m *Mesh) Convex(p PolygonID) bool {
	verts := m.Vertices(p)
	winding := common.Sign(common.PolygonArea2D(verts))
	if winding == 0 {
		return false
	}
	n := len(verts)
	for i := range verts {
		a := verts[common.Prev(i, n)]
		b := verts[i]
		c := verts[common.Next(i, n)]
		area := common.Area2(a, b, c)
		if winding*area < 0 {
			return false
		}
		if area == 0 && reverses(a, b, c) {
			return false
		}
	}
	return true
}

// reverses reports whether the walk a->b->c turns straight back on the
// xz-plane.
func reverses(a, b, c common.Vec3) bool {
	return (b[0]-a[0])*(c[0]-b[0])+(b[2]-a[2])*(c[2]-b[2]) < 0
}

// ComputeCentroid refreshes the centroid (mean vertex) and the plane of p.
func (m *Mesh) ComputeCentroid(p PolygonID) {
	verts := m.Vertices(p)
	var centroid, normal common.Vec3
	n := len(verts)
	for i, v := range verts {
		centroid = centroid.Add(v)
		// Newell
		w := verts[common.Next(i, n)]
		normal[0] += (v[1] - w[1]) * (v[2] + w[2])
		normal[1] += (v[2] - w[2]) * (v[0] + w[0])
		normal[2] += (v[0] - w[0]) * (v[1] + w[1])
	}
	poly := &m.Polygons[p]
	poly.Centroid = centroid.Mul(1 / float32(n))
	normal = common.Vnormalize(normal)
	poly.Plane = Plane{Normal: normal, Constant: -normal.Dot(poly.Centroid)}
}

// Contains reports whether point lies inside p. The point may sit up to
// epsilon outside any edge and up to epsilon off the polygon plane.
func (m *Mesh) Contains(p PolygonID, point common.Vec3, epsilon float32) bool {
	verts := m.Vertices(p)
	winding := common.Sign(common.PolygonArea2D(verts))
	if winding == 0 {
		return false
	}
	n := len(verts)
	for i, a := range verts {
		b := verts[common.Next(i, n)]
		dx, dz := b[0]-a[0], b[2]-a[2]
		length := float32(math.Sqrt(float64(common.Sqr(dx) + common.Sqr(dz))))
		if length == 0 {
			continue
		}
		if winding*common.Area2(a, b, point)/length < -epsilon {
			return false
		}
	}
	plane := m.Polygons[p].Plane
	if plane.Normal.Len() == 0 {
		return true
	}
	return common.Abs(plane.DistanceToPoint(point)) <= epsilon
}
