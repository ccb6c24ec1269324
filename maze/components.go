package maze

// Components splits the graph into its connected regions.
// Regions are ordered by their first cell in build order, and cells within a
// region are listed in breadth-first order from that cell.
// A goal outside the root's region is unreachable from it.
//
// Time:   O(V + E).
// Memory: O(V) for seen flags and output.
func (gr *Graph) Components() [][]Cell {
	seen := make(map[Cell]bool, len(gr.order))
	var comps [][]Cell

	for _, c0 := range gr.order {
		if seen[c0] {
			continue
		}
		// BFS to collect the region
		queue := []Cell{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range gr.adj[queue[qi]] {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
