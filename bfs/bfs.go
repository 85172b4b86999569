// Package bfs walks the Location graph outward from a start location,
// ring by ring, counting roads rather than summing their weights.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/dispatchsim/core"
	"github.com/katalvlaran/dispatchsim/queue"
)

// BFS visits every location reachable from start, nearest rings first.
//
// Roads are taken in the order they were added to the graph and a location
// is claimed the first time it is seen, so each location appears once in
// Order and repeated calls on an unchanged graph agree.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrBadHopLimit, the context's
// error after cancellation, or a wrapped OnVisit error. On the last two the
// partial result is returned alongside the error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSettings(opts)
	if s.err != nil {
		return nil, s.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string, n),
	}
	arrivedBy := make(map[string]core.Neighbor, n)

	frontier := queue.New()
	frontier.Enqueue(start)
	for !frontier.Empty() {
		if err := s.ctx.Err(); err != nil {
			return res, err
		}

		cur, _ := frontier.Dequeue()
		hops := res.Depth[cur]
		res.Order = append(res.Order, cur)

		step := Step{Location: cur, Hops: hops, From: res.Parent[cur], Road: arrivedBy[cur]}
		if err := s.onVisit(step); err != nil {
			return res, fmt.Errorf("bfs: visiting %q: %w", cur, err)
		}
		if s.hopLimit > 0 && hops >= s.hopLimit {
			continue
		}

		roads, err := g.Neighbors(cur)
		if err != nil {
			return res, fmt.Errorf("bfs: roads from %q: %w", cur, err)
		}
		for _, road := range roads {
			if _, seen := res.Depth[road.ID]; seen || !s.follow(cur, road) {
				continue
			}
			res.Depth[road.ID] = hops + 1
			res.Parent[road.ID] = cur
			arrivedBy[road.ID] = road
			frontier.Enqueue(road.ID)
		}
	}

	return res, nil
}
