package dpllsat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format and returns the
// clause list plus the variable count to build a ClauseStore/Solver
// from.
//
// For convenience, a few non-standard variations are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not
//     just in the preamble.
//   - The problem line may be missing, in which case the variable
//     count is inferred as the maximum |literal| observed.
func ParseDIMACS(r io.Reader) (clauses [][]int, numVars int, err error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, 0, errors.New("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, 0, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, 0, fmt.Errorf("malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return nil, 0, fmt.Errorf("problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return nil, 0, fmt.Errorf("only cnf supported; got %q", fields[1])
			}
			var perr error
			problem.vars, perr = strconv.Atoi(fields[2])
			if perr != nil {
				return nil, 0, fmt.Errorf("malformed #vars in problem line: %s", perr)
			}
			problem.clauses, perr = strconv.Atoi(fields[3])
			if perr != nil {
				return nil, 0, fmt.Errorf("malformed #clauses in problem line: %s", perr)
			}
			if problem.vars < 0 {
				return nil, 0, fmt.Errorf("invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, 0, fmt.Errorf("invalid #clauses %d", problem.clauses)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, perr := strconv.Atoi(field)
			if perr != nil {
				return nil, 0, fmt.Errorf("invalid variable: %s", perr)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if serr := s.Err(); serr != nil {
		return nil, 0, serr
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	maxVar := 0
	for _, clause := range clauses {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	if problem.vars > 0 {
		if maxVar > problem.vars {
			return nil, 0, fmt.Errorf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
				maxVar, problem.vars, problem.vars)
		}
		if len(clauses) != problem.clauses {
			return nil, 0, fmt.Errorf("problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))
		}
		numVars = problem.vars
	} else {
		numVars = maxVar
	}
	return clauses, numVars, nil
}

// WriteDIMACS serializes clauses over numVars variables in DIMACS CNF
// format: a "p cnf" header line followed by one line per clause, each
// literal space-separated and terminated with " 0". An empty clause
// serializes as a bare "0" line.
func WriteDIMACS(w io.Writer, clauses [][]int, numVars int) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		var b strings.Builder
		for _, v := range clause {
			fmt.Fprintf(&b, "%d ", v)
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
