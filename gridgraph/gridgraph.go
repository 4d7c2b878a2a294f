// Package gridgraph provides a virtual, tileable grid graph:
//
//   - Entry costs read from a square base tile
//   - M×M tiling with the wrap-into-1..9 rule, computed on demand
//   - A synthetic start node feeding the top-left cell
//   - Four-connectivity in a fixed left, right, up, down order
package gridgraph

import "fmt"

// NewTiledGrid constructs a TiledGrid from a non-empty, square 2D slice of
// single-digit costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNonSquare if the row count
// differs from the row length, ErrCellValue for costs outside 0..9 and
// ErrBadMultiplier if WithMultiplier was given a value below 1.
// Algorithmic complexity: O(N²) time and memory.
func NewTiledGrid(values [][]int, opts ...Option) (*TiledGrid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Multiplier < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMultiplier, cfg.Multiplier)
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if h != w {
		return nil, fmt.Errorf("%w: %d rows of length %d", ErrNonSquare, h, w)
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < 0 || v > MaxCost {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrCellValue, v, x, y)
			}
			cells[y][x] = v
		}
	}

	return &TiledGrid{
		base:       cells,
		n:          w,
		multiplier: cfg.Multiplier,
		size:       cfg.Multiplier * w,
	}, nil
}

// SetMultiplier changes the tiling factor. It only recomputes the effective
// side length; the base tile is left untouched, so it may be called any number
// of times between shortest-path runs.
func (tg *TiledGrid) SetMultiplier(m int) error {
	if m < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMultiplier, m)
	}
	tg.multiplier = m
	tg.size = m * tg.n

	return nil
}

// Multiplier returns the current tiling factor.
func (tg *TiledGrid) Multiplier() int { return tg.multiplier }

// BaseSize returns N, the side length of the loaded tile.
func (tg *TiledGrid) BaseSize() int { return tg.n }

// Size returns D, the side length of the effective (tiled) grid.
func (tg *TiledGrid) Size() int { return tg.size }

// InBounds reports whether (x,y) lies within the effective grid.
// Complexity: O(1).
func (tg *TiledGrid) InBounds(x, y int) bool {
	return x >= 0 && x < tg.size && y >= 0 && y < tg.size
}

// NodeID maps (x,y) to its node identifier y*D + x + 1.
// The caller is responsible for passing in-bounds coordinates.
func (tg *TiledGrid) NodeID(x, y int) int {
	return y*tg.size + x + 1
}

// Coordinate converts a cell node identifier back to (x,y).
// StartNode and identifiers past LastNodeID yield (-1,-1).
func (tg *TiledGrid) Coordinate(id int) (x, y int) {
	if id <= StartNode || id > tg.LastNodeID() {
		return -1, -1
	}
	idx := id - 1

	return idx % tg.size, idx / tg.size
}

// Cost returns the cost of entering cell (x,y) of the effective grid.
// Returns ErrOutOfBounds if (x,y) is outside [0,D)×[0,D).
func (tg *TiledGrid) Cost(x, y int) (int, error) {
	if !tg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, tg.size, tg.size)
	}

	return tg.cost(x, y), nil
}

// cost applies the tiling rule: base[y mod N][x mod N] + y div N + x div N,
// wrapped into 1..9. A zero in the base tile stays zero only in tile (0,0).
func (tg *TiledGrid) cost(x, y int) int {
	v := tg.base[y%tg.n][x%tg.n] + y/tg.n + x/tg.n
	if v == 0 {
		return 0
	}

	return (v-1)%MaxCost + 1
}

// NumNodes returns D*D cells plus the synthetic start node.
func (tg *TiledGrid) NumNodes() int {
	return tg.size*tg.size + 1
}

// LastNodeID returns the identifier of the bottom-right cell, D*D.
func (tg *TiledGrid) LastNodeID() int {
	return tg.size * tg.size
}

// Distance returns the weight of the edge u→v, which is the cost of entering v.
// The boolean is false when no such edge exists (NONE).
//
// Rules:
//   - u or v outside [0, NumNodes()): NONE.
//   - u == v: weight 0.
//   - u == StartNode: only the edge to node 1 exists, weighted with the base
//     top-left cost. There is no edge back into StartNode.
//   - otherwise u and v must be 4-adjacent cells of the effective grid.
//
// Complexity: O(1).
func (tg *TiledGrid) Distance(u, v int) (int64, bool) {
	last := tg.LastNodeID()
	if u < StartNode || u > last || v < StartNode || v > last {
		return 0, false
	}
	if u == v {
		return 0, true
	}
	if u == StartNode {
		if v == 1 {
			return int64(tg.base[0][0]), true
		}
		return 0, false
	}

	ux, uy := tg.Coordinate(u)
	vx, vy := tg.Coordinate(v)
	if ux < 0 || vx < 0 {
		return 0, false
	}
	dx, dy := vx-ux, vy-uy
	if dx*dx+dy*dy != 1 {
		return 0, false
	}

	return int64(tg.cost(vx, vy)), true
}

// Neighbors lists the nodes reachable in one step from u, in the order
// left, right, up, down. StartNode has the single neighbor 1.
// Identifiers outside [0, NumNodes()) have no neighbors.
// Complexity: O(1).
func (tg *TiledGrid) Neighbors(u int) []int {
	if u == StartNode {
		return []int{1}
	}
	x, y := tg.Coordinate(u)
	if x < 0 {
		return nil
	}

	res := make([]int, 0, 4)
	if x > 0 {
		res = append(res, u-1)
	}
	if x < tg.size-1 {
		res = append(res, u+1)
	}
	if y > 0 {
		res = append(res, u-tg.size)
	}
	if y < tg.size-1 {
		res = append(res, u+tg.size)
	}

	return res
}

// Materialize builds the full D×D matrix of entry costs. It is the explicit
// counterpart of the virtual view and is meant for inspection and testing.
// Complexity: O(D²) time and memory.
func (tg *TiledGrid) Materialize() [][]int {
	out := make([][]int, tg.size)
	for y := 0; y < tg.size; y++ {
		row := make([]int, tg.size)
		for x := 0; x < tg.size; x++ {
			row[x] = tg.cost(x, y)
		}
		out[y] = row
	}

	return out
}
