// Package dfs implements depth-first search on core.Graph with an explicit
// work stack instead of recursion, so traversal depth is bounded only by memory.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/dispatchsim/core"
)

// frame is one entry of the explicit work stack: a location whose adjacency
// is being scanned, and the position of the next neighbor to consider.
type frame struct {
	id    string
	depth int
	nbs   []core.Neighbor
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g from startID. With
// WithFullTraversal it covers every component, starting roots in creation order.
//
// Visitation matches the recursive formulation: from the current location,
// descend into the first unvisited neighbor in adjacency insertion order,
// and backtrack only once every neighbor has been considered.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ctx.Err() on cancellation,
// or a wrapped hook error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:     make([]string, 0, n),
		PostOrder: make([]string, 0, n),
		Depth:     make(map[string]int, n),
		Parent:    make(map[string]string, n),
		Visited:   make(map[string]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, w.run(startID)
	}
	for _, v := range g.Vertices() {
		if res.Visited[v] {
			continue
		}
		if err := w.run(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// run drives one DFS tree rooted at root.
func (w *dfsWalker) run(root string) error {
	if err := w.discover(root, "", 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbs) {
			nb := top.nbs[top.next]
			top.next++

			if w.res.Visited[nb.ID] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb.ID) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			// discover may grow the stack; top is not used afterwards
			if err := w.discover(nb.ID, top.id, top.depth+1); err != nil {
				return err
			}
			continue
		}

		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, id)
	}

	return nil
}

// discover marks id visited, records it, runs the pre-order hook and pushes
// its frame onto the work stack.
func (w *dfsWalker) discover(id, parent string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbs: nbs})

	return nil
}
