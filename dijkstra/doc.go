// Package dijkstra computes least-total-weight routes over the Location graph.
//
// Overview:
//
//   - Dijkstra runs the single-source algorithm from Options.Source and returns
//     a distance map, plus a predecessor map when WithReturnPath is set.
//   - ShortestPath answers the ambulance question: the cheapest route between
//     two named locations, rebuilt in start → end order.
//   - A binary min-heap (container/heap) always expands the closest pending
//     location. Improved distances push a new entry; outdated entries are
//     discarded when they surface.
//
// Determinism:
//
//   - Locations with equal tentative distance leave the heap in creation
//     order, so equal-cost routes always resolve to the same Path.
//   - Neighbors are relaxed in insertion order, and only strictly shorter
//     candidates replace a recorded predecessor.
//
// Weights:
//
//   - Weights are int64. Negative weights are accepted by the graph and by
//     this package unless WithNegativeWeightCheck (or core.WithNonNegativeWeights
//     at graph construction) is used; results on such graphs are undefined but
//     always terminate.
//   - Unreached locations keep Infinity (math.MaxInt64). Sums that would
//     overflow are treated as unreachable.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrBadMaxDistance: invalid invocation.
//   - ErrVertexNotFound: the source or target is not a known location.
//   - ErrNoRoute: ShortestPath found the target unreachable.
//   - ErrNegativeWeight: a negative edge was rejected, or path rebuilding hit
//     a predecessor cycle caused by one.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) for distances, predecessors and the heap.
//
// Example:
//
//	route, err := dijkstra.ShortestPath(g, "Hospital", "Accident Site")
//	if errors.Is(err, dijkstra.ErrNoRoute) {
//		// report that no route exists
//	}
//	fmt.Println(route.Path, route.Distance)
package dijkstra
