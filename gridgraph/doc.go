// Package gridgraph treats a square grid of single-digit entry costs as a
// weighted graph that can be virtually tiled M×M times.
//
// What:
//
//   - TiledGrid wraps an immutable N×N [][]int of costs and a multiplier M.
//   - The effective grid is D×D with D = M×N; nothing beyond the base tile is stored.
//   - Tile (ty,tx) adds ty+tx to every base cost and wraps values above 9 back into 1..9.
//   - Node 0 is a synthetic start with a single edge 0→1 carrying the base top-left cost.
//   - Nodes 1..D*D are cells in row-major order: (y,x) ↦ y*D + x + 1.
//
// Why:
//
//   - Shortest-path engines only need NumNodes, Neighbors and Distance; the
//     expanded matrix for M=5 is 25× the input and never has to exist.
//
// Complexity:
//
//   - NewTiledGrid: O(N²) time and memory (deep copy).
//   - Neighbors, Distance, Cost: O(1).
//   - Materialize: O(D²) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonSquare: row count differs from row length.
//   - ErrCellValue: a cost lies outside 0..9.
//   - ErrBadDigit: the loader met a non-digit character.
//   - ErrBadMultiplier: multiplier below 1.
//   - ErrOutOfBounds: Cost queried outside the effective grid.
package gridgraph
