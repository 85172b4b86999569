package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dispatchsim/core"
)

var (
	// ErrStartVertexNotFound: the start location is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: BFS was handed a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrBadHopLimit: WithHopLimit received a negative value.
	ErrBadHopLimit = errors.New("bfs: hop limit must be non-negative")

	// ErrNotReached: PathTo asked for a location outside the explored area.
	ErrNotReached = errors.New("bfs: location not reached")
)

// Step describes one location as the search reaches it.
type Step struct {
	// Location is the location being visited.
	Location string

	// Hops is the number of roads between the start and Location.
	Hops int

	// From is the location Step was reached from; empty for the start.
	From string

	// Road is the adjacency entry of From that led here (zero for the start).
	Road core.Neighbor
}

// Option tunes a single BFS call.
type Option func(*settings)

// settings is the resolved form of the options passed to BFS.
type settings struct {
	ctx      context.Context
	hopLimit int // 0 = unlimited
	onVisit  func(Step) error
	follow   func(from string, road core.Neighbor) bool
	err      error
}

func newSettings(opts []Option) settings {
	s := settings{
		ctx:     context.Background(),
		onVisit: func(Step) error { return nil },
		follow:  func(string, core.Neighbor) bool { return true },
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithContext lets the caller abandon a long search. The context is
// checked before each location is visited.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithHopLimit keeps the search within n roads of the start.
// Zero means no limit; a negative n makes BFS fail with ErrBadHopLimit.
func WithHopLimit(n int) Option {
	return func(s *settings) {
		if n < 0 {
			s.err = fmt.Errorf("%w: got %d", ErrBadHopLimit, n)
			return
		}
		s.hopLimit = n
	}
}

// WithOnVisit runs fn for every location in visit order.
// A non-nil error stops the search and is returned wrapped.
func WithOnVisit(fn func(Step) error) Option {
	return func(s *settings) {
		if fn != nil {
			s.onVisit = fn
		}
	}
}

// WithRoadFilter makes the search ignore roads for which keep returns false,
// e.g. closed roads or roads heavier than a threshold.
func WithRoadFilter(keep func(from string, road core.Neighbor) bool) Option {
	return func(s *settings) {
		if keep != nil {
			s.follow = keep
		}
	}
}

// BFSResult is what a search found.
type BFSResult struct {
	// Order lists locations in visit order, start first.
	Order []string

	// Depth maps every reached location to its hop count.
	Depth map[string]int

	// Parent maps every reached location except the start to the
	// location it was discovered from.
	Parent map[string]string
}

// PathTo returns the fewest-hop path start → dest found by the search.
// It fails with ErrNotReached when dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}

	path := make([]string, hops+1)
	cur := dest
	for i := hops; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
