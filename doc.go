// Package chiton solves two grid puzzles with small, focused packages:
//
//	gridgraph/        — square cost grid exposed as a graph, virtually tiled M×M
//	dijkstra/         — lazy-deletion heap Dijkstra over integer-indexed graphs
//	enhance/          — image enhancement over an infinite binary canvas
//	internal/solver/  — input → Part 1 / Part 2 pipelines, with logrus tracing
//	cmd/chiton/       — lowest-risk path binary
//	cmd/trenchmap/    — trench-map enhancement binary
//
// Quick ASCII example of tiling a 2×2 tile with M=2 (each tile step adds 1,
// and values above 9 wrap back to 1):
//
//	1 9      1 9 2 1
//	3 4  →   3 4 4 5
//	         2 1 3 2
//	         4 5 5 6
package chiton
