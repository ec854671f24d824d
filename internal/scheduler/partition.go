package scheduler

// Assignment returns the target indices owned by one worker under the
// static striding rule: worker i of w owns {i, i+w, i+2w, ...} below n.
// Across all workers the assignments are disjoint and cover [0, n)
// exactly once. There is no shared work queue and no rebalancing; a
// worker whose targets are all slow stalls on its own.
func Assignment(worker, workers, n int) []int {
	var idx []int
	for j := worker; j < n; j += workers {
		idx = append(idx, j)
	}
	return idx
}
