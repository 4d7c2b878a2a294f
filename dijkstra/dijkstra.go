// Package dijkstra implements Dijkstra's shortest-path algorithm on integer-indexed graphs.
//
// Notes on implementation choices:
//
//   - Distances, predecessors and visited flags are slices indexed by node id.
//   - Negative weights are detected while relaxing, since edges are computed on
//     demand and cannot be pre-scanned without enumerating the whole graph.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from Source to v, Infinity if unreachable.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     NoPredecessor for the source and unreachable nodes.
//   - err:  error if inputs are invalid or a negative weight is reported.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be in [0, NumNodes()) (ErrSourceOutOfRange).
//  3. Target, when set, must be in [0, NumNodes()) (ErrTargetOutOfRange).
//  4. No edge leaving a finalised node may have negative weight, including
//     edges back into finalised nodes (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and node ids
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumNodes()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}
	if cfg.Target != -1 && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, cfg.Target, n)
	}

	// 3) Prepare state and run
	r := newRunner(g, cfg, n)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph   // The input graph; read-only within Dijkstra.
	options Options // Configuration options (Source, thresholds, etc.).
	dist    []int64 // dist[v] = current best distance from Source.
	prev    []int   // prev[v] = predecessor on the shortest path, nil unless ReturnPath.
	visited []bool  // visited[v] = distance of v is final.
	pq      nodePQ  // Min-heap of nodeItem for lazy priority queue.
}

// newRunner sets dist to Infinity everywhere except the source and seeds
// the heap with (Source, 0).
func newRunner(g Graph, cfg Options, n int) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = Infinity
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = NoPredecessor
		}
	}

	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process is the core loop. It repeatedly extracts the node with the minimum
// tentative distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The Target node has just been finalised.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Stale entry: a shorter distance for u was already finalised.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
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

// relax attempts to improve the distance of every out-neighbor of u.
// Assumes r.dist[u] is finalised before calling relax(u).
func (r *runner) relax(u int) error {
	n := len(r.dist)
	du := r.dist[u]
	for _, v := range r.g.Neighbors(u) {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %d→%d not in [0,%d)", ErrNeighborOutOfRange, u, v, n)
		}

		w, ok := r.g.Distance(u, v)
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
		}
		if r.visited[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold || w >= Infinity-du {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist. Several entries may
// exist for the same node; only the first one popped is acted on.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
