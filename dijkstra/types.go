// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on integer-indexed graphs.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity marks nodes that were never reached from the source.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks prev entries of the source and of unreached nodes.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source id is not a node of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrTargetOutOfRange indicates that the target id is not a node of the graph.
	ErrTargetOutOfRange = errors.New("dijkstra: target node out of range")

	// ErrNegativeWeight indicates that the graph reported a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNeighborOutOfRange indicates that Neighbors returned an id outside the graph.
	ErrNeighborOutOfRange = errors.New("dijkstra: neighbor node out of range")

	// ErrNoPath indicates that the target was not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view Dijkstra explores. Node ids are the integers
// 0 .. NumNodes()-1.
type Graph interface {
	// NumNodes returns the number of nodes.
	NumNodes() int
	// Neighbors returns the out-neighbors of u in a deterministic order.
	Neighbors(u int) []int
	// Distance returns the weight of the edge u→v, or false if there is none.
	Distance(u, v int) (int64, bool)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node id, must be in [0, NumNodes()).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – nodes farther than this are not expanded.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
// Target           – if ≥ 0, stop once this node's distance is final.
type Options struct {
	Source           int   // The id of the source node
	ReturnPath       bool  // Whether to return the predecessor slice
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
	Target           int   // Early-exit node, -1 for none
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold unless positive.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithTarget stops the search as soon as id is popped from the heap.
// Distances of nodes not yet finalised at that point are only upper bounds.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// Source 0, no path, no distance cap, no walls, no early exit.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Target:           -1,
	}
}
