// Package halfedge stores polygon boundaries as cyclic lists of directed
// half-edges. Edges and polygons live in flat arenas and reference each other
// by index, so relinking never moves a record.
package halfedge

import (
	"errors"
	"fmt"

	"github.com/gorustyt/regionnav/common"
)

type EdgeID int32

type PolygonID int32

const (
	NoEdge    EdgeID    = -1
	NoPolygon PolygonID = -1
)

var ErrDegeneratePolygon = errors.New("halfedge: polygon needs at least three vertices")

// HalfEdge is a directed boundary edge starting at Vertex and ending at
// the Vertex of Next.
type HalfEdge struct {
	Vertex  common.Vec3
	Next    EdgeID
	Prev    EdgeID
	Twin    EdgeID    // opposite edge of the adjacent polygon, NoEdge on the hull
	Polygon PolygonID // owning polygon
}

type Plane struct {
	Normal   common.Vec3
	Constant float32
}

func (p Plane) DistanceToPoint(v common.Vec3) float32 {
	return p.Normal.Dot(v) + p.Constant
}

type Polygon struct {
	Edge     EdgeID // any edge of the boundary cycle
	Centroid common.Vec3
	Plane    Plane
}

type Mesh struct {
	Edges    []HalfEdge
	Polygons []Polygon
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// AddPolygon appends a polygon whose boundary visits contour in order.
// No twins are linked.
func (m *Mesh) AddPolygon(contour []common.Vec3) (PolygonID, error) {
	n := len(contour)
	if n < 3 {
		return NoPolygon, fmt.Errorf("%w: got %d", ErrDegeneratePolygon, n)
	}
	pid := PolygonID(len(m.Polygons))
	first := EdgeID(len(m.Edges))
	for i, v := range contour {
		m.Edges = append(m.Edges, HalfEdge{
			Vertex:  v,
			Next:    first + EdgeID(common.Next(i, n)),
			Prev:    first + EdgeID(common.Prev(i, n)),
			Twin:    NoEdge,
			Polygon: pid,
		})
	}
	m.Polygons = append(m.Polygons, Polygon{Edge: first})
	m.ComputeCentroid(pid)
	return pid, nil
}

func (m *Mesh) Edge(e EdgeID) *HalfEdge {
	return &m.Edges[e]
}

func (m *Mesh) Polygon(p PolygonID) *Polygon {
	return &m.Polygons[p]
}

func (m *Mesh) From(e EdgeID) common.Vec3 {
	return m.Edges[e].Vertex
}

func (m *Mesh) To(e EdgeID) common.Vec3 {
	return m.Edges[m.Edges[e].Next].Vertex
}

// LinkTwin makes a and b twins of each other.
func (m *Mesh) LinkTwin(a, b EdgeID) {
	m.Edges[a].Twin = b
	m.Edges[b].Twin = a
}

func (m *Mesh) SquaredLength(e EdgeID) float32 {
	return common.VdistSqr(m.From(e), m.To(e))
}

// Walk visits the boundary cycle of p starting at its first edge until fn
// returns true or the cycle closes.
func (m *Mesh) Walk(p PolygonID, fn func(e EdgeID) (stop bool)) {
	start := m.Polygons[p].Edge
	e := start
	common.DoWhile(func() bool {
		if fn(e) {
			return true
		}
		e = m.Edges[e].Next
		return false
	}, func() bool {
		return e != start
	})
}

// Vertices returns the start points of the boundary cycle of p in order.
func (m *Mesh) Vertices(p PolygonID) []common.Vec3 {
	var verts []common.Vec3
	m.Walk(p, func(e EdgeID) bool {
		verts = append(verts, m.Edges[e].Vertex)
		return false
	})
	return verts
}
