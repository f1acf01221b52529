package dpllsat

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFixtures(t *testing.T) {
	for _, tt := range loadFixtures(t, false) {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []BranchMode{Static, Random, TwoClause} {
				t.Run(mode.String(), func(t *testing.T) {
					solver, err := NewSolver(tt.clauses, tt.numVars)
					if err != nil {
						t.Fatalf("NewSolver: %s", err)
					}
					result := solver.Solve(SolveOptions{Mode: mode, Seed: 1})
					if tt.sat {
						if result.Status != Sat {
							t.Fatalf("got %s; want SAT", result.Status)
						}
						if !solutionIsValid(tt.clauses, result.Model) {
							t.Fatalf("got model %v, but it does not satisfy the formula", result.Model)
						}
					} else {
						if result.Status != Unsat {
							t.Fatalf("got %s; want UNSAT", result.Status)
						}
					}
				})
			}
		})
	}
}

func TestRandomized(t *testing.T) {
	for _, tt := range []struct {
		numVars    int
		numClauses int
		numSeeds   int
	}{
		{2, 2, 10},
		{3, 10, 100},
		{5, 10, 500},
		{10, 20, 500},
	} {
		tt := tt
		name := fmt.Sprintf("vars=%d,clauses=%d", tt.numVars, tt.numClauses)
		t.Run(name, func(t *testing.T) {
			for seed := 0; seed < tt.numSeeds; seed++ {
				problem := makeRandomSat(int64(seed), tt.numVars, tt.numClauses)
				for _, mode := range []BranchMode{Static, Random, TwoClause} {
					solver, err := NewSolver(problem, tt.numVars)
					if err != nil {
						t.Fatalf("[seed=%d] NewSolver: %s", seed, err)
					}
					result := solver.Solve(SolveOptions{Mode: mode, Seed: int64(seed)})
					if result.Status != Sat {
						t.Fatalf("[seed=%d mode=%s] got %s; want SAT\n\n%v\n", seed, mode, result.Status, problem)
					}
					if !solutionIsValid(problem, result.Model) {
						t.Fatalf("[seed=%d mode=%s] got incorrect solution:\n\n%v\n\n%v\n", seed, mode, result.Model, problem)
					}
				}
			}
		})
	}
}

// TestCompleteness brute-forces every truth assignment for small
// instances and checks the solver agrees with exhaustive search on
// satisfiability, for every branching mode. This is the one place the
// test suite checks UNSAT correctness on instances that are not
// trivially unsatisfiable by unit propagation alone.
func TestCompleteness(t *testing.T) {
	const maxVars = 20
	for _, tt := range []struct {
		numVars    int
		numClauses int
		numSeeds   int
	}{
		{4, 6, 50},
		{6, 15, 50},
		{8, 25, 50},
		{12, 40, 20},
	} {
		tt := tt
		if tt.numVars > maxVars {
			t.Fatalf("test table entry exceeds brute-force budget: %d > %d", tt.numVars, maxVars)
		}
		name := fmt.Sprintf("vars=%d,clauses=%d", tt.numVars, tt.numClauses)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tt.numVars)*1000 + int64(tt.numClauses)))
			for seed := 0; seed < tt.numSeeds; seed++ {
				problem := randomClauses(rng, tt.numVars, tt.numClauses)
				want := bruteForceSat(problem, tt.numVars)
				for _, mode := range []BranchMode{Static, Random, TwoClause} {
					solver, err := NewSolver(problem, tt.numVars)
					if err != nil {
						t.Fatalf("NewSolver: %s", err)
					}
					result := solver.Solve(SolveOptions{Mode: mode, Seed: int64(seed)})
					got := result.Status == Sat
					if got != want {
						t.Fatalf("[seed=%d mode=%s] solver says sat=%v, brute force says sat=%v\n\n%v\n", seed, mode, got, want, problem)
					}
					if got && !solutionIsValid(problem, result.Model) {
						t.Fatalf("[seed=%d mode=%s] invalid model %v\n\n%v\n", seed, mode, result.Model, problem)
					}
				}
			}
		})
	}
}

func BenchmarkFixtures(b *testing.B) {
	for _, bb := range loadFixtures(b, true) {
		bb := bb
		b.Run(bb.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				solver, err := NewSolver(bb.clauses, bb.numVars)
				if err != nil {
					b.Fatal(err)
				}
				result := solver.Solve(SolveOptions{Mode: Static})
				b.ReportMetric(float64(result.SplitCount), "splits/op")
				b.ReportMetric(result.SolveTime.Seconds(), "seconds/op")
			}
		})
	}
}

type fixtureTest struct {
	name    string
	clauses [][]int
	numVars int
	sat     bool
}

func loadFixtures(tb testing.TB, onlyBench bool) []fixtureTest {
	filenames, err := filepath.Glob("testdata/bench/*.cnf")
	if err != nil {
		tb.Fatal(err)
	}
	if !onlyBench {
		nonBench, err := filepath.Glob("testdata/*.cnf")
		if err != nil {
			tb.Fatal(err)
		}
		filenames = append(filenames, nonBench...)
	}
	var tests []fixtureTest
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			tb.Fatal(err)
		}
		clauses, numVars, err := ParseDIMACS(f)
		f.Close()
		if err != nil {
			tb.Fatalf("bad fixture %s: %s", filename, err)
		}
		name := filepath.Base(filename)
		switch {
		case strings.HasSuffix(filename, ".sat.cnf"):
			tests = append(tests, fixtureTest{name, clauses, numVars, true})
		case strings.HasSuffix(filename, ".unsat.cnf"):
			tests = append(tests, fixtureTest{name, clauses, numVars, false})
		default:
			tb.Fatalf("bad testdata CNF filename: %q", filename)
		}
	}
	return tests
}

func solutionIsValid(clauses [][]int, model []bool) bool {
clauseLoop:
	for _, clause := range clauses {
		for _, v := range clause {
			av := v
			if av < 0 {
				av = -av
			}
			want := v > 0
			if model[av] == want {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

// makeRandomSat generates a random CNF formula guaranteed satisfiable
// by a planted assignment: each clause always contains at least one
// literal consistent with that assignment.
func makeRandomSat(seed int64, numVars, numClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		assignment[v] = rng.Intn(2) == 1
	}
	vars := make([]int, numVars)
	for v := range vars {
		vars[v] = v
	}
	problem := make([][]int, numClauses)
	for i := range problem {
		rng.Shuffle(len(vars), func(i, j int) {
			vars[i], vars[j] = vars[j], vars[i]
		})
		problem[i] = make([]int, rng.Intn(numVars)+1)
		fixed := rng.Intn(len(problem[i]))
		for j := range problem[i] {
			v := vars[j] + 1
			if j == fixed {
				if !assignment[v-1] {
					v = -v
				}
			} else if rng.Intn(2) == 1 {
				v = -v
			}
			problem[i][j] = v
		}
	}
	return problem
}

// randomClauses generates numClauses clauses of length up to 3 over
// numVars variables, with no planted assignment (so the formula may or
// may not be satisfiable) — used by TestCompleteness to exercise both
// outcomes against brute-force search.
func randomClauses(rng *rand.Rand, numVars, numClauses int) [][]int {
	clauses := make([][]int, numClauses)
	for i := range clauses {
		length := 1 + rng.Intn(3)
		seen := make(map[int]bool, length)
		var clause []int
		for len(clause) < length {
			v := 1 + rng.Intn(numVars)
			if seen[v] {
				continue
			}
			seen[v] = true
			if rng.Intn(2) == 1 {
				v = -v
			}
			clause = append(clause, v)
		}
		clauses[i] = clause
	}
	return clauses
}

// bruteForceSat exhaustively checks every one of the 2^numVars
// assignments. Only ever called with numVars small enough that this is
// cheap (see TestCompleteness's table).
func bruteForceSat(clauses [][]int, numVars int) bool {
	model := make([]bool, numVars+1)
	total := 1 << uint(numVars)
	for mask := 0; mask < total; mask++ {
		for v := 1; v <= numVars; v++ {
			model[v] = mask&(1<<uint(v-1)) != 0
		}
		if solutionIsValid(clauses, model) {
			return true
		}
	}
	return false
}
