// SPDX-License-Identifier: MIT

package trace

// Path is an ordered sequence of vertex IDs from start to a target.
type Path []string

// Cost sums the edge weights along p using weight(u, v).
// The second return value is false if any hop has no edge.
func (p Path) Cost(weight func(u, v string) (int64, error)) (int64, bool) {
	var total int64
	for i := 1; i < len(p); i++ {
		w, err := weight(p[i-1], p[i])
		if err != nil {
			return 0, false
		}
		total += w
	}

	return total, true
}

// Reconstruct walks predecessor links from target back to start and
// returns the reversed walk.
//
// It reports unreachable (nil, false) rather than failing when:
//   - target has no finite distance in dist;
//   - target has no predecessor and is not start;
//   - the chain breaks or loops before reaching start.
//
// Complexity: O(len(path)).
func Reconstruct(prev map[string]string, dist map[string]int64, start, target string) (Path, bool) {
	d, ok := dist[target]
	if !ok || d == Inf {
		return nil, false
	}

	// build reversed path; bounded by len(prev)+1 hops to survive a corrupt map
	rev := Path{target}
	for cur, hops := target, 0; cur != start; hops++ {
		if hops > len(prev) {
			return nil, false
		}
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		rev = append(rev, p)
		cur = p
	}

	// reverse to get start → target
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}
