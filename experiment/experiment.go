// Package experiment runs a random-3-SAT PAR-10 study: for a grid of
// (N, r) cells, generate NumTrials instances per cell, solve each once
// per heuristic mode (every mode sees the same instance), and report
// PAR-10 means and timeout rates.
//
// There is no plotting here; callers get the structured Results map
// back and can render it however they like.
package experiment

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/solverlab/dpllsat"
)

// Modes is the fixed set of heuristics every trial is run under. The
// order here is also the order used in the printed report line.
var Modes = [3]dpllsat.BranchMode{dpllsat.Static, dpllsat.Random, dpllsat.TwoClause}

// Config parameterizes one run of the grid.
type Config struct {
	NVals     []int
	Ratios    []float64
	NumTrials int
	TimeLimit time.Duration
	BaseSeed  int64
}

// GridPoint identifies one (N, r) cell of the study.
type GridPoint struct {
	N int
	R float64
}

// ModeStats is the PAR-10 aggregation for one (N, r, mode) cell.
type ModeStats struct {
	L           int
	Par10Mean   float64
	TimeoutRate float64
}

// Results maps each grid cell to its per-mode statistics.
type Results map[GridPoint]map[dpllsat.BranchMode]ModeStats

// trialSeed derives a per-trial seed deterministically from
// (N, r, trial, baseSeed), so that regenerating a trial's instance
// later (e.g. to inspect a failure) never requires storing the
// generated clauses themselves.
func trialSeed(baseSeed int64, n int, r float64, trial int) int64 {
	return baseSeed + int64(n)*10_000 + int64(r*100)*1000 + int64(trial)
}

// RunGrid runs the full (N, r) grid described by cfg, writing one
// progress line per cell to w as it completes, and returns the full
// structured results.
func RunGrid(cfg Config, w io.Writer) (Results, error) {
	results := make(Results)
	for _, n := range cfg.NVals {
		for _, r := range cfg.Ratios {
			stats, err := runCell(cfg, n, r)
			if err != nil {
				return nil, err
			}
			results[GridPoint{N: n, R: r}] = stats
			if _, err := fmt.Fprintln(w, FormatLine(n, r, stats)); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}

// cellAccumulator collects each trial's contribution to one (N, r)
// cell, one slot per (mode, trial) filled in by that trial's own
// goroutine. Distinct trials never touch the same slot, so this needs
// no mutex; stats() then sums in a fixed trial order so the aggregate
// PAR-10 mean does not depend on the order goroutines happen to
// finish in — floating-point addition is not associative, and
// summing in whatever order a mutex-guarded running total happened to
// see would make the reported mean a function of scheduling, not just
// of the trials themselves.
type cellAccumulator struct {
	par10     map[dpllsat.BranchMode][]float64
	timedOut  map[dpllsat.BranchMode][]bool
	numTrials int
}

func newCellAccumulator(numTrials int) *cellAccumulator {
	acc := &cellAccumulator{
		par10:     make(map[dpllsat.BranchMode][]float64, len(Modes)),
		timedOut:  make(map[dpllsat.BranchMode][]bool, len(Modes)),
		numTrials: numTrials,
	}
	for _, m := range Modes {
		acc.par10[m] = make([]float64, numTrials)
		acc.timedOut[m] = make([]bool, numTrials)
	}
	return acc
}

func (acc *cellAccumulator) set(mode dpllsat.BranchMode, trial int, par10 float64, timedOut bool) {
	acc.par10[mode][trial] = par10
	acc.timedOut[mode][trial] = timedOut
}

func (acc *cellAccumulator) stats(l int) map[dpllsat.BranchMode]ModeStats {
	out := make(map[dpllsat.BranchMode]ModeStats, len(Modes))
	for _, m := range Modes {
		var sum float64
		var timeouts int
		for trial := 0; trial < acc.numTrials; trial++ {
			sum += acc.par10[m][trial]
			if acc.timedOut[m][trial] {
				timeouts++
			}
		}
		out[m] = ModeStats{
			L:           l,
			Par10Mean:   sum / float64(acc.numTrials),
			TimeoutRate: float64(timeouts) / float64(acc.numTrials),
		}
	}
	return out
}

// par10Time converts a solve time to its PAR-10 contribution: a
// timeout at limit T counts as 10*T, everything else counts at its
// actual time.
func par10Time(solveTime, timeLimit time.Duration) float64 {
	if solveTime >= timeLimit {
		return 10 * timeLimit.Seconds()
	}
	return solveTime.Seconds()
}

// runCell runs NumTrials trials for one (N, r) cell, each trial's
// three heuristic solves sharing one generated instance, and
// aggregates PAR-10/timeout-rate per mode.
func runCell(cfg Config, n int, r float64) (map[dpllsat.BranchMode]ModeStats, error) {
	l := int(float64(n) * r)
	acc := newCellAccumulator(cfg.NumTrials)

	var g errgroup.Group
	for trial := 0; trial < cfg.NumTrials; trial++ {
		trial := trial
		g.Go(func() error {
			seed := trialSeed(cfg.BaseSeed, n, r, trial)
			clauses, err := dpllsat.Generate3SAT(l, n, seed)
			if err != nil {
				return err
			}
			for _, mode := range Modes {
				solver, err := dpllsat.NewSolver(clauses, n)
				if err != nil {
					return err
				}
				result := solver.Solve(dpllsat.SolveOptions{
					TimeLimit: cfg.TimeLimit,
					Mode:      mode,
					Seed:      seed + 999,
				})
				timedOut := result.Status == dpllsat.Timeout
				acc.set(mode, trial, par10Time(result.SolveTime, cfg.TimeLimit), timedOut)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return acc.stats(l), nil
}

// FormatLine renders one (N, r) cell's report line in a fixed,
// machine-parseable format:
//
//	N=<int> r=<float.1> | PAR10 static=<float.4> random=<float.4> 2cl=<float.4>
func FormatLine(n int, r float64, stats map[dpllsat.BranchMode]ModeStats) string {
	return fmt.Sprintf("N=%d r=%.1f | PAR10 static=%.4f random=%.4f 2cl=%.4f",
		n, r,
		stats[dpllsat.Static].Par10Mean,
		stats[dpllsat.Random].Par10Mean,
		stats[dpllsat.TwoClause].Par10Mean,
	)
}
