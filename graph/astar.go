package graph

import "github.com/gorustyt/regionnav/common"

const (
	nodeOpen   = 0x01
	nodeClosed = 0x02
)

// Heuristic estimates the remaining cost between two node indices.
type Heuristic func(g *Graph, from, to int) float32

// Euclid is the straight-line distance between two node positions. It is
// admissible as long as edge costs are distances.
func Euclid(g *Graph, from, to int) float32 {
	a, err := g.GetNode(from)
	if err != nil {
		return 0
	}
	b, err := g.GetNode(to)
	if err != nil {
		return 0
	}
	return common.Vdist(a.Position, b.Position)
}

type searchNode struct {
	index  int
	parent int
	cost   float32 // cost from the source
	total  float32 // cost plus heuristic
	flags  uint8
	_index int // heap slot
}

func (n *searchNode) SetIndex(index int) { n._index = index }
func (n *searchNode) GetIndex() int      { return n._index }

// AStar finds the cheapest route between two node indices.
type AStar struct {
	Graph     *Graph
	Source    int
	Target    int
	Heuristic Heuristic
	Found     bool

	nodes map[int]*searchNode
	open  NodeQueue[*searchNode]
}

func NewAStar(g *Graph, source, target int) *AStar {
	return &AStar{
		Graph:     g,
		Source:    source,
		Target:    target,
		Heuristic: Euclid,
	}
}

// Search runs to completion. Found reports whether Target is reachable.
func (a *AStar) Search() *AStar {
	a.Found = false
	a.nodes = make(map[int]*searchNode)
	if !a.Graph.HasNode(a.Source) || !a.Graph.HasNode(a.Target) {
		return a
	}

	if a.open == nil {
		a.open = NewNodeQueue(func(n1, n2 *searchNode) bool {
			return n1.total < n2.total
		})
	}
	open := a.open
	open.Reset()
	start := &searchNode{
		index:  a.Source,
		parent: -1,
		total:  a.Heuristic(a.Graph, a.Source, a.Target),
		flags:  nodeOpen,
		_index: -1,
	}
	a.nodes[a.Source] = start
	open.Offer(start)

	for !open.Empty() {
		best := open.Poll()
		best.flags &^= nodeOpen
		best.flags |= nodeClosed
		if best.index == a.Target {
			a.Found = true
			return a
		}

		for _, e := range a.Graph.GetEdges(best.index) {
			cost := best.cost + e.Cost
			neighbour, ok := a.nodes[e.To]
			if !ok {
				neighbour = &searchNode{index: e.To, _index: -1}
				a.nodes[e.To] = neighbour
			} else if neighbour.flags&nodeClosed != 0 || cost >= neighbour.cost {
				continue
			}
			neighbour.parent = best.index
			neighbour.cost = cost
			neighbour.total = cost + a.Heuristic(a.Graph, e.To, a.Target)
			if neighbour.flags&nodeOpen != 0 {
				open.Update(neighbour)
			} else {
				neighbour.flags |= nodeOpen
				open.Offer(neighbour)
			}
		}
	}
	return a
}

// Path returns the node indices from Source to Target inclusive, or nil if
// no route was found.
func (a *AStar) Path() []int {
	if !a.Found {
		return nil
	}
	var path []int
	for i := a.Target; i != -1; i = a.nodes[i].parent {
		path = append(path, i)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// Cost returns the accumulated edge cost of the found path.
func (a *AStar) Cost() float32 {
	if !a.Found {
		return 0
	}
	return a.nodes[a.Target].cost
}

// Clear drops the search state so the AStar can be reused.
func (a *AStar) Clear() {
	a.Found = false
	a.nodes = nil
	if a.open != nil {
		a.open.Reset()
	}
}
