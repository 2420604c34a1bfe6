// Package navmesh turns a half-edge polygon mesh into convex regions linked
// by a navigation graph, and answers path and movement queries on it.
//
// Build and Clear replace all state and must not run concurrently with
// queries. Queries only read and may run in parallel with each other.
package navmesh

import (
	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/common/logger"
	"github.com/gorustyt/regionnav/graph"
	"github.com/gorustyt/regionnav/halfedge"
	"go.uber.org/zap"
)

// NoNode is returned by node queries that find nothing.
const NoNode = -1

type NavMesh struct {
	Mesh    *halfedge.Mesh
	Graph   *graph.Graph
	Regions []halfedge.PolygonID

	cfg Config
	log *zap.Logger

	edgeNodes []int               // node index per half-edge, NoNode if unassigned
	positions map[common.Vec3]int // first-seen node index per position
}

func New(cfg Config, log *zap.Logger) *NavMesh {
	n := &NavMesh{
		Graph: graph.New(true),
		cfg:   cfg,
		log:   logger.OrNop(log),
	}
	n.Clear()
	return n
}

func (n *NavMesh) Config() Config {
	return n.cfg
}

// Clear drops the regions and the graph.
func (n *NavMesh) Clear() {
	n.Mesh = nil
	n.Graph.Clear()
	n.Regions = nil
	n.edgeNodes = nil
	n.positions = make(map[common.Vec3]int)
}

// EdgeNodeIndex returns the navigation node assigned to the start of e.
func (n *NavMesh) EdgeNodeIndex(e halfedge.EdgeID) int {
	if e < 0 || int(e) >= len(n.edgeNodes) {
		return NoNode
	}
	return n.edgeNodes[e]
}

func (n *NavMesh) nodePosition(index int) (common.Vec3, bool) {
	node, err := n.Graph.GetNode(index)
	if err != nil {
		return common.Vec3{}, false
	}
	return node.Position, true
}
