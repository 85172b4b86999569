// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// Location graph and the two-point ambulance route built on top of it.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved distances push a new heap entry; stale
//     entries are skipped when popped (already finalized, or carrying a
//     distance larger than the recorded best).
//   - Heap ties are broken by location creation index.
//   - With a Target the loop stops as soon as the target is popped.
//   - Negative weights are not rejected unless WithNegativeWeightCheck is set.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dispatchsim/core"
	"github.com/katalvlaran/dispatchsim/stack"
)

// Dijkstra computes shortest distances from Options.Source to the locations of g.
//
// Returns:
//
//   - dist: location → distance (Infinity if unreachable or never reached
//     before the Target stop).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == "" means v has no predecessor.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrBadMaxDistance,
//     or ErrNegativeWeight (only with WithNegativeWeightCheck).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Target)
	}
	if cfg.CheckNegative {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s–%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath computes the least-total-weight route from start to end.
//
// Either endpoint missing → ErrVertexNotFound, and no search is performed.
// end unreachable → ErrNoRoute. Otherwise the route is rebuilt by walking
// predecessors from end, pushing each location on a stack, and popping the
// stack so Path reads start → … → end.
func ShortestPath(g *core.Graph, start, end string) (*Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q or %q", ErrVertexNotFound, start, end)
	}

	dist, prev, err := Dijkstra(g, Source(start), Target(end), WithReturnPath())
	if err != nil {
		return nil, err
	}
	if dist[end] == Infinity {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoRoute, start, end)
	}

	path := stack.New()
	for cur := end; ; cur = prev[cur] {
		path.Push(cur)
		if cur == start || prev[cur] == "" {
			break
		}
		// only a negative weight can make predecessor links loop
		if path.Len() > g.VertexCount() {
			return nil, fmt.Errorf("%w: predecessor cycle while rebuilding %s→%s", ErrNegativeWeight, start, end)
		}
	}

	route := &Route{From: start, To: end, Distance: dist[end], Path: make([]string, 0, path.Len())}
	for !path.Empty() {
		name, _ := path.Pop()
		route.Path = append(route.Path, name)
	}

	return route, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to Infinity, the source to zero, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Infinity
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	idx, _ := r.g.Index(r.options.Source)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, idx: idx, dist: 0})
}

// process repeatedly extracts the closest pending location and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - The smallest pending distance exceeds MaxDistance.
//   - The Target was popped.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry: finalized already, or superseded by a shorter distance
		if r.visited[u] || d > r.dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Only strictly shorter candidates are recorded.
func (r *runner) relax(u string) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, nb := range nbs {
		w := nb.Weight
		if w > 0 && du > Infinity-w {
			continue // sum would overflow past Infinity
		}
		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u

		idx, _ := r.g.Index(nb.ID)
		heap.Push(&r.pq, &nodeItem{id: nb.ID, idx: idx, dist: newDist})
	}

	return nil
}

// nodeItem represents a location and its tentative distance from the source.
type nodeItem struct {
	id   string
	idx  int // creation index, used to break distance ties
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
