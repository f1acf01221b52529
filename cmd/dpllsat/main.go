// Command dpllsat is a small SAT solver CLI built around the
// watched-literal solver core.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/solverlab/dpllsat"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode: print split count and solve time to stderr")
	timeLimit := flag.Duration("time-limit", 0, "maximum time to spend searching (0 disables the limit)")
	mode := flag.String("branch-mode", "static", "branching heuristic: static, random, or 2clause")
	seed := flag.Int64("seed", 1, "RNG seed, used by -branch-mode=random")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `dpllsat: a DPLL SAT solver.

Usage:

  dpllsat [flags] [input.cnf]

dpllsat reads a single problem specification in the DIMACS CNF format.
It writes the output in the conventional way: either the first line is
UNSAT, or the first line is TIMEOUT (when -time-limit expires), or else
the first line is SAT and the second line gives the assignment of every
variable as space-separated signed literals, without a terminating 0.

If no input file is given, dpllsat reads from standard input.

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	branchMode, err := parseBranchMode(*mode)
	if err != nil {
		log.Fatalln("Error:", err)
	}

	var r io.Reader = os.Stdin
	if flag.NArg() >= 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	clauses, numVars, err := dpllsat.ParseDIMACS(r)
	if err != nil {
		log.Fatalln("Error reading input file as DIMACS CNF:", err)
	}

	solver, err := dpllsat.NewSolver(clauses, numVars)
	if err != nil {
		log.Fatalln("Error building solver:", err)
	}

	result := solver.Solve(dpllsat.SolveOptions{
		TimeLimit: *timeLimit,
		Mode:      branchMode,
		Seed:      *seed,
	})

	if *verbose {
		fmt.Fprintf(os.Stderr, "split_count %d\n", result.SplitCount)
		fmt.Fprintf(os.Stderr, "solve_time %s\n", result.SolveTime)
	}

	switch result.Status {
	case dpllsat.Sat:
		fmt.Println("SAT")
		for v := 1; v < len(result.Model); v++ {
			if v > 1 {
				fmt.Print(" ")
			}
			lit := v
			if !result.Model[v] {
				lit = -v
			}
			fmt.Print(lit)
		}
		fmt.Println()
	case dpllsat.Timeout:
		fmt.Println("TIMEOUT")
		os.Exit(1)
	default:
		fmt.Println("UNSAT")
	}
}

func parseBranchMode(s string) (dpllsat.BranchMode, error) {
	switch s {
	case "static":
		return dpllsat.Static, nil
	case "random":
		return dpllsat.Random, nil
	case "2clause":
		return dpllsat.TwoClause, nil
	default:
		return 0, fmt.Errorf("unknown branch mode %q (want static, random, or 2clause)", s)
	}
}
