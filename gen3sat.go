package dpllsat

import "math/rand"

// Generate3SAT produces L random 3-SAT clauses over variables
// 1..N, deterministically from seed. Each clause samples 3 distinct
// variables uniformly without replacement (via sampleThreeDistinct)
// and independently negates each with probability 0.5. Every call
// gets its own *rand.Rand seeded from seed, never a package-global
// generator, so concurrent callers never share RNG state and a given
// seed always reproduces the same clauses regardless of what else is
// running.
func Generate3SAT(L, N int, seed int64) ([][]int, error) {
	if N < 3 {
		return nil, inputFormatErrorf("random 3-SAT generator requires N >= 3, got %d", N)
	}
	if L < 1 {
		return nil, inputFormatErrorf("random 3-SAT generator requires L >= 1, got %d", L)
	}

	rng := rand.New(rand.NewSource(seed))
	clauses := make([][]int, L)
	for i := 0; i < L; i++ {
		vars := sampleThreeDistinct(rng, N)
		clause := make([]int, 3)
		for j, v := range vars {
			lit := v
			if rng.Float64() < 0.5 {
				lit = -lit
			}
			clause[j] = lit
		}
		clauses[i] = clause
	}
	return clauses, nil
}

// sampleThreeDistinct picks 3 distinct variables uniformly from
// 1..N without replacement, via a partial Fisher-Yates shuffle over a
// scratch array of N candidates (equivalent to Python's
// rng.sample(range(1, N+1), 3)).
func sampleThreeDistinct(rng *rand.Rand, N int) [3]int {
	// For the N this generator is used at (tens to low hundreds of
	// variables), allocating a full candidate slice per clause is
	// simpler and plenty fast; a reservoir sampler would avoid the
	// allocation but isn't warranted at this scale.
	candidates := make([]int, N)
	for i := range candidates {
		candidates[i] = i + 1
	}
	var picked [3]int
	for i := 0; i < 3; i++ {
		j := i + rng.Intn(N-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		picked[i] = candidates[i]
	}
	return picked
}
