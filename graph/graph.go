// Package graph holds the navigation graph and the shortest-path search run
// over it.
package graph

import (
	"errors"
	"fmt"

	"github.com/gorustyt/regionnav/common"
)

var (
	ErrNodeNotFound  = errors.New("graph: node not found")
	ErrDuplicateNode = errors.New("graph: duplicate node index")
	ErrEdgeNotFound  = errors.New("graph: edge not found")
)

// Node is a navigation node placed on a shared region boundary.
type Node struct {
	Index    int
	Position common.Vec3
}

// Edge is a weighted directed connection between two node indices.
type Edge struct {
	From int
	To   int
	Cost float32
}

type edgeKey struct {
	from, to int
}

// Graph maps node indices to nodes. In digraph mode edges are stored as
// given, otherwise every inserted edge is mirrored.
type Graph struct {
	Digraph bool

	nodes map[int]*Node
	order []int // insertion order of node indices
	adj   map[int][]*Edge
	edges map[edgeKey]*Edge
}

func New(digraph bool) *Graph {
	g := &Graph{Digraph: digraph}
	g.Clear()
	return g
}

func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.nodes[n.Index]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n.Index)
	}
	g.nodes[n.Index] = n
	g.order = append(g.order, n.Index)
	return nil
}

func (g *Graph) HasNode(index int) bool {
	_, ok := g.nodes[index]
	return ok
}

func (g *Graph) GetNode(index int) (*Node, error) {
	n, ok := g.nodes[index]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}
	return n, nil
}

// GetNodes returns all nodes in insertion order.
func (g *Graph) GetNodes() []*Node {
	res := make([]*Node, 0, len(g.order))
	for _, i := range g.order {
		res = append(res, g.nodes[i])
	}
	return res
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// AddEdge inserts e. Both endpoints must already exist. An edge that is
// already present is left untouched.
func (g *Graph) AddEdge(e *Edge) error {
	if !g.HasNode(e.From) {
		return fmt.Errorf("%w: edge source %d", ErrNodeNotFound, e.From)
	}
	if !g.HasNode(e.To) {
		return fmt.Errorf("%w: edge target %d", ErrNodeNotFound, e.To)
	}
	g.insert(e)
	if !g.Digraph {
		g.insert(&Edge{From: e.To, To: e.From, Cost: e.Cost})
	}
	return nil
}

func (g *Graph) insert(e *Edge) {
	k := edgeKey{e.From, e.To}
	if _, ok := g.edges[k]; ok {
		return
	}
	g.edges[k] = e
	g.adj[e.From] = append(g.adj[e.From], e)
}

func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.edges[edgeKey{from, to}]
	return ok
}

func (g *Graph) GetEdge(from, to int) (*Edge, error) {
	e, ok := g.edges[edgeKey{from, to}]
	if !ok {
		return nil, fmt.Errorf("%w: %d -> %d", ErrEdgeNotFound, from, to)
	}
	return e, nil
}

// GetEdges returns the outgoing edges of index in insertion order.
func (g *Graph) GetEdges(index int) []*Edge {
	return g.adj[index]
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

func (g *Graph) Clear() {
	g.nodes = make(map[int]*Node)
	g.order = nil
	g.adj = make(map[int][]*Edge)
	g.edges = make(map[edgeKey]*Edge)
}
