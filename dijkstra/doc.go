// Package dijkstra provides Dijkstra's shortest-path algorithm over graphs
// whose vertices are dense integer identifiers and whose edges are queried on
// demand, such as the virtual tiled grids of package gridgraph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to
//     every node of a Graph with non-negative edge weights.
//   - A binary min-heap (container/heap) always expands the next-closest node.
//   - Decrease-key is lazy: improved distances push a fresh heap entry and stale
//     entries are skipped when popped, via the visited slice.
//
// The Graph contract:
//
//	type Graph interface {
//	    NumNodes() int                     // node ids are 0 .. NumNodes()-1
//	    Neighbors(u int) []int             // out-neighbors of u, deterministic order
//	    Distance(u, v int) (int64, bool)   // weight of u→v, false if no edge
//	}
//
// Nothing else is required, so the graph never needs to be materialised, and
// Dijkstra never mutates it.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(V) for dist/visited/prev, O(E) heap entries worst case.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:           graph is nil.
//   - ErrSourceOutOfRange:   Source is not in [0, NumNodes()).
//   - ErrTargetOutOfRange:   WithTarget id is not in [0, NumNodes()).
//   - ErrNegativeWeight:     Distance reported a negative weight; the run aborts.
//   - ErrNeighborOutOfRange: Neighbors returned an id outside [0, NumNodes()).
//   - ErrNoPath:             PathTo was asked for an unreachable target.
//
// Options:
//
//   - Source(id):              starting node, default 0.
//   - WithReturnPath():        also return the predecessor slice.
//   - WithMaxDistance(d):      do not expand nodes farther than d.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as walls.
//   - WithTarget(id):          stop as soon as id is finalised.
//
// Unreached nodes keep the sentinel Infinity (math.MaxInt64), which is larger
// than any achievable path cost.
package dijkstra
