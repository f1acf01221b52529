// Command experiment runs the PAR-10 random-3-SAT study across a grid
// of (N, r) cells and prints one report line per cell to stdout. It
// does not plot anything; pipe its output into whatever plotting tool
// you like.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/solverlab/dpllsat/experiment"
)

func main() {
	log.SetFlags(0)
	nVals := flag.String("n", "85,110", "comma-separated list of variable counts")
	ratios := flag.String("ratios", "3.0:6.0:0.2", "comma-separated ratios, or start:end:step")
	trials := flag.Int("trials", 100, "number of trials per (N, r) cell")
	timeLimit := flag.Duration("time-limit", 2*time.Second, "per-solve time limit")
	seed := flag.Int64("seed", 12345, "base seed for per-trial seed derivation")
	flag.Parse()

	ns, err := parseInts(*nVals)
	if err != nil {
		log.Fatalln("Error parsing -n:", err)
	}
	rs, err := parseRatios(*ratios)
	if err != nil {
		log.Fatalln("Error parsing -ratios:", err)
	}

	cfg := experiment.Config{
		NVals:     ns,
		Ratios:    rs,
		NumTrials: *trials,
		TimeLimit: *timeLimit,
		BaseSeed:  *seed,
	}

	if _, err := experiment.RunGrid(cfg, os.Stdout); err != nil {
		log.Fatalln("Error running experiment:", err)
	}
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", field, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseRatios accepts either a comma-separated list ("3.0,3.5,4.0") or
// an inclusive start:end:step range ("3.0:6.0:0.2", which yields
// 3.0, 3.2, ..., 6.0).
func parseRatios(s string) ([]float64, error) {
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("range form must be start:end:step, got %q", s)
		}
		start, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid start %q: %w", parts[0], err)
		}
		end, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid end %q: %w", parts[1], err)
		}
		step, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid step %q: %w", parts[2], err)
		}
		if step <= 0 {
			return nil, fmt.Errorf("step must be positive, got %v", step)
		}
		var out []float64
		// Round to one decimal place to avoid float accumulation drift
		// (3.0, 3.2, 3.4... rather than 3.0, 3.1999999999999997, ...).
		// The bound is end+step/2, not end, so the range is inclusive of
		// end itself despite any float drift in the accumulated v.
		for v := start; v <= end+step/2; v += step {
			out = append(out, float64(int(v*10+0.5))/10)
		}
		return out, nil
	}

	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		r, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q: %w", field, err)
		}
		out = append(out, r)
	}
	return out, nil
}
