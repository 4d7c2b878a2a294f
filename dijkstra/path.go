package dijkstra

import "fmt"

// PathTo rebuilds the node sequence source → … → target from a predecessor
// slice returned with WithReturnPath. It returns ErrNoPath when target was
// not reached, and ErrTargetOutOfRange for ids outside prev.
// Complexity: O(path length).
func PathTo(prev []int, source, target int) ([]int, error) {
	if target < 0 || target >= len(prev) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, len(prev))
	}

	var rev []int
	for at := target; ; at = prev[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
		if prev[at] == NoPredecessor || len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, target, source)
		}
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}
