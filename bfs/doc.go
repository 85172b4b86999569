// Package bfs provides breadth-first search over a core.Graph.
//
// BFS answers "who is within k roads of here, and in what order would an
// alert reach them": it visits the start, then every location one road
// away, then two, and so on. Road weights are ignored.
//
// Each visit is reported as a Step carrying the hop count, the location it
// was reached from and the core.Neighbor entry (weight, edge ID) of the road
// used, so callers can log or audit the spread.
//
// Options:
//
//   - WithContext:    abandon the search when the context is done.
//   - WithHopLimit:   stop expanding past n roads (0 = unlimited).
//   - WithOnVisit:    observe or abort on each Step.
//   - WithRoadFilter: skip roads, e.g. closed or too long.
//
// Determinism: roads are followed in insertion order and the frontier is a
// FIFO queue.Queue, so the same graph always produces the same Order.
//
// Usage:
//
//	res, err := bfs.BFS(g, "Hospital", bfs.WithHopLimit(2))
//	if errors.Is(err, bfs.ErrStartVertexNotFound) {
//		// report "not found"
//	}
//	path, _ := res.PathTo("Accident Site")
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
