package rograph

// ReachOrder runs a breadth-first sweep from start and returns the
// visited labels in visit order. Neighbor labels are explored in
// ascending order, so the result is deterministic. An out-of-range
// start yields an empty slice.
// Complexity: O(V+E) time, O(V) memory.
func (g *Graph) ReachOrder(start int) []int {
	if start < 0 || start >= len(g.adj) {
		return nil
	}
	n := len(g.adj)
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	order := make([]int, 0, n)

	visited[start] = true
	queue = append(queue, start)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		order = append(order, u)
		nbrs, _ := g.Neighbors(u) // sorted; label is in range by construction
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return order
}

// Connected reports whether every node is reachable from label 0.
// An empty graph is vacuously disconnected (it is never exposed by
// Build anyway).
// Complexity: O(V+E).
func (g *Graph) Connected() bool {
	if g.NumNodes() == 0 {
		return false
	}
	return len(g.ReachOrder(0)) == g.NumNodes()
}
