package evaluator

// combinations returns every k-subset of items in lexicographic index order.
func combinations[T any](items []T, k int) [][]T {
	if k < 0 || k > len(items) {
		return nil
	}
	var out [][]T
	forEachCombination(len(items), k, func(idx []int) {
		c := make([]T, k)
		for i, j := range idx {
			c[i] = items[j]
		}
		out = append(out, c)
	})
	return out
}

// forEachCombination calls fn with each k-subset of [0, n) in lexicographic
// order. fn must not retain idx.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
