// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or every component via WithFullTraversal
//   - Explicit work stack: no recursion, identical order to the recursive algorithm
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Result:
//
//   - Order      pre-order, i.e. the sequence locations are first visited.
//   - PostOrder  the sequence locations finish.
//   - Depth, Parent, Visited describe the DFS forest.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the work stack (each frame holds a copy of its adjacency).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
