// Graph method implementations: location and edge insertion plus read-only
// queries. Every query validates existence first and returns copies, so
// callers cannot mutate the graph through returned slices.

package core

import "strconv"

const edgeIDPrefix = "e"

// AddVertex inserts a location if missing (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.index[id]; exists {
		return nil // no-op for existing location
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = nil

	return nil
}

// HasVertex reports whether the location exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, exists := g.index[id]

	return exists
}

// Index returns the creation position of the location.
// The second result is false when the location is unknown.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// AddEdge inserts an undirected edge u–v with the given weight and returns its ID.
//
// Steps:
//  1. Validate names (ErrEmptyVertexID) and, when configured, weight (ErrNegativeWeight).
//  2. Ensure endpoints exist, u before v, via AddVertex.
//  3. Record the edge and append (v, w) to u and (u, w) to v.
//
// Calling AddEdge twice with identical arguments creates a parallel edge.
// A self-loop u–u appears twice in u's adjacency.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight int64) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if g.nonNegative && weight < 0 {
		return "", ErrNegativeWeight
	}

	if err := g.AddVertex(u); err != nil {
		return "", err
	}
	if err := g.AddVertex(v); err != nil {
		return "", err
	}

	eid := edgeIDPrefix + strconv.Itoa(len(g.edges)+1)
	g.edges = append(g.edges, &Edge{ID: eid, From: u, To: v, Weight: weight})

	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: weight, EdgeID: eid})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: weight, EdgeID: eid})

	return eid, nil
}

// Vertices returns all location names in creation order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the adjacency list of id in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound for invalid input.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	nbs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, len(nbs))
	copy(out, nbs)

	return out, nil
}

// NeighborIDs returns the neighbor names of id in insertion order,
// keeping duplicates produced by parallel edges.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// Edges returns all edges in insertion order.
// The returned *Edge values are shared; treat them as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of locations.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of inserted edges, parallel edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NonNegativeWeights reports whether the graph rejects negative weights.
func (g *Graph) NonNegativeWeights() bool { return g.nonNegative }
