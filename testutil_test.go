package lap_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lap"
)

// randMatrix builds a deterministic pseudo-random n×n cost matrix with
// entries in [0, 100). A fixed seed keeps every test run reproducible.
func randMatrix(n int, seed int64) *lap.Matrix {
	rng := rand.New(rand.NewSource(seed))
	m, err := lap.NewMatrix(n, n)
	if err != nil {
		panic(err) // n > 0 in all callers
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rng.Float64()*100)
		}
	}

	return m
}

// bruteForceCost returns the minimum total assignment cost over all N!
// permutations. Only usable for small N; the cross-check tests keep N ≤ 8.
func bruteForceCost(m *lap.Matrix) float64 {
	n := m.Rows()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == n {
			var total float64
			for i, j := range perm {
				total += m.At(i, j)
			}
			if total < best {
				best = total
			}

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)

	return best
}

// isPermutation reports whether p is a permutation of [0, n).
func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, x := range p {
		if x < 0 || x >= n || seen[x] {
			return false
		}
		seen[x] = true
	}

	return true
}
