// Package core defines the Location graph types, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - location name is the empty string.
//	ErrVertexNotFound  - requested location does not exist.
//	ErrNegativeWeight  - negative weight on a graph built WithNonNegativeWeights.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided location name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent location.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative weight was supplied to a graph
	// that only accepts non-negative weights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Neighbor is one adjacency entry: the location on the other side of an
// edge and the weight of that edge.
type Neighbor struct {
	// ID is the neighboring location.
	ID string

	// Weight is the distance/cost of the edge.
	Weight int64

	// EdgeID references the Edge this entry mirrors.
	EdgeID string
}

// Edge represents an undirected connection between two locations.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithNonNegativeWeights makes AddEdge reject negative weights with ErrNegativeWeight.
func WithNonNegativeWeights() GraphOption {
	return func(g *Graph) { g.nonNegative = true }
}

// Graph is the in-memory Location graph.
//
// order keeps creation order of locations; index maps a location to its
// position in order; adjacency holds per-location neighbor lists in
// insertion order. Graph is not safe for concurrent mutation.
type Graph struct {
	nonNegative bool

	order     []string
	index     map[string]int
	adjacency map[string][]Neighbor
	edges     []*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default negative weights are accepted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[string]int),
		adjacency: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
