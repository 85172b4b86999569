// Package core provides the Location graph used by the dispatch simulator:
// an undirected, weighted graph over named locations with a minimal API.
//
// The Graph G = (V,E) behaves as follows:
//
//   - Locations are identified by their name; uniqueness is exact string match.
//   - AddEdge(u, v, w) creates absent endpoints in first-seen order and mirrors
//     the edge, so v is reachable from u and u from v with the same weight.
//   - Parallel edges are kept: inserting the same edge twice yields two entries.
//   - Nothing is ever removed; the graph only grows.
//
// Determinism:
//
//   - Vertices() returns Locations in creation order.
//   - Neighbors(id) returns adjacency entries in insertion order.
//   - Edges() returns edges in insertion order, with IDs "e1", "e2", ….
//
// Traversal order in bfs/dfs and tie-breaking in dijkstra depend on these
// guarantees, so the same sequence of AddEdge calls always yields the same output.
//
// Weights:
//
//	Weights are stored as supplied. By default negative weights are accepted
//	(shortest paths are then undefined); WithNonNegativeWeights rejects them
//	with ErrNegativeWeight.
//
// Lookups never fabricate entries: querying an unknown Location yields
// ErrVertexNotFound rather than an empty adjacency list.
//
// Complexity:
//
//	AddEdge, AddVertex, HasVertex, Index: O(1) amortized.
//	Vertices, Edges: O(V) and O(E) copies.
//	Neighbors(id): O(deg(id)) copy.
package core
