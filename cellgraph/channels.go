package cellgraph

// Channels finds the connected flow channels of the grid: maximal sets
// of positive-valued cells linked through interfaces that survive
// weighing (weight > 0). Each channel is a slice of row-major cell
// indices in BFS discovery order; an isolated positive cell forms a
// channel of one. Cells that are zero, negative or NaN never join a
// channel.
//
// To convert an index back to (z,x), use Coordinate.
//
// Time: O(NZ×NX + E). Memory: O(NZ×NX + E).
func (b *Builder) Channels(flat []float64) ([][]int, error) {
	if len(flat) != b.Cells() {
		return nil, ErrLengthMismatch
	}

	// Adjacency over kept interfaces only.
	adj := make([][]int, b.Cells())
	for _, f := range b.interfaces {
		if w := 2 * flat[f.I] * flat[f.J]; !(w > 0) {
			continue
		}
		adj[f.I] = append(adj[f.I], f.J)
		adj[f.J] = append(adj[f.J], f.I)
	}

	seen := make([]bool, b.Cells())
	var channels [][]int
	for i0 := range flat {
		if !(flat[i0] > 0) || seen[i0] {
			continue
		}
		// BFS to collect the channel.
		queue := []int{i0}
		seen[i0] = true
		var ch []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ch = append(ch, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		channels = append(channels, ch)
	}

	return channels, nil
}
