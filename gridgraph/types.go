// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/chiton.
package gridgraph

const (
	// StartNode is the synthetic node whose only edge leads to the top-left cell.
	StartNode = 0

	// MaxCost is the largest entry cost of any cell; tiled costs wrap back to 1 above it.
	MaxCost = 9
)

// Options contains tunable parameters for building a TiledGrid.
type Options struct {
	// Multiplier is the number of times the base tile is repeated along each axis.
	Multiplier int
}

// Option represents a functional option for configuring a TiledGrid.
type Option func(*Options)

// WithMultiplier sets the initial tiling multiplier.
// Values below 1 are rejected by NewTiledGrid with ErrBadMultiplier.
func WithMultiplier(m int) Option {
	return func(o *Options) {
		o.Multiplier = m
	}
}

// DefaultOptions returns Options with Multiplier=1 (the base tile only).
func DefaultOptions() Options {
	return Options{
		Multiplier: 1,
	}
}

// TiledGrid is a read-only graph view over a square grid of entry costs.
// base holds the N×N input exactly as loaded and is never mutated;
// size is the effective side D = multiplier×n and is the only state
// that changes, through SetMultiplier.
type TiledGrid struct {
	base       [][]int
	n          int
	multiplier int
	size       int
}
