// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the Location graph.
//
// Options:
//
//	– Source:                 ID of the starting location (required for Dijkstra).
//	– Target:                 stop as soon as this location is finalized.
//	– WithReturnPath:         return the predecessor map for path reconstruction.
//	– WithMaxDistance:        do not explore locations farther than this.
//	– WithNegativeWeightCheck: pre-scan edges and fail with ErrNegativeWeight.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge is found (check enabled) or a
//	                     reconstructed path loops because of one.
//	– ErrNoRoute         if the target is unreachable from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance recorded for locations not (yet) reached.
// It is larger than any achievable path sum.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source location is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoRoute indicates that the target cannot be reached from the source.
	ErrNoRoute = errors.New("dijkstra: no route")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source        – starting location (must be non-empty and present in the graph).
// Target        – optional; when set, the search stops once Target is popped.
// ReturnPath    – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance   – locations with a tentative distance beyond it are not explored.
// CheckNegative – pre-scan all edges and reject negative weights.
type Options struct {
	Source        string
	Target        string
	ReturnPath    bool
	MaxDistance   int64
	CheckNegative bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting location. Must be called for Dijkstra.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target makes the search stop early once id's distance is final.
// Distances of locations not finalized by then remain tentative.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values are recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithNegativeWeightCheck enables an O(E) pre-scan rejecting negative weights.
// Without it negative weights are accepted and results are undefined.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}

// DefaultOptions returns Options for the given source with no target,
// no predecessor map, no distance cap and no negative-weight scan.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: Infinity,
	}
}

// Route is a least-total-weight path between two locations.
type Route struct {
	// From and To are the requested endpoints.
	From, To string

	// Path lists locations from From to To inclusive.
	Path []string

	// Distance is the summed weight along Path.
	Distance int64
}
