package dpllsat

// ClauseStore owns the flattened literal buffer for a CNF formula.
// Clause i occupies Lits[Offsets[i]:Offsets[i+1]]. It is built once
// and never mutated after construction.
type ClauseStore struct {
	Lits    []Literal
	Offsets []int32
	NumVars int

	// EmptyClauseIndices lists clauses of length 0, in input order.
	// Their presence makes the formula trivially unsatisfiable (see
	// Solver.Solve), but construction itself does not reject them.
	EmptyClauseIndices []int
}

// NewClauseStore flattens clauses (each a sequence of nonzero signed
// integer literals) into a ClauseStore over variables 1..numVars.
// It rejects a clause referencing a variable outside that range, or
// containing a zero literal, with an *InputFormatError.
func NewClauseStore(clauses [][]int, numVars int) (*ClauseStore, error) {
	if numVars < 0 {
		return nil, inputFormatErrorf("num_vars must be non-negative, got %d", numVars)
	}
	cs := &ClauseStore{
		NumVars: numVars,
		Offsets: make([]int32, 1, len(clauses)+1),
	}
	cs.Offsets[0] = 0
	for ci, clause := range clauses {
		for _, v := range clause {
			if v == 0 {
				return nil, inputFormatErrorf("clause %d contains a zero literal", ci)
			}
			av := v
			if av < 0 {
				av = -av
			}
			if av > numVars {
				return nil, inputFormatErrorf("clause %d references variable %d, outside 1..%d", ci, av, numVars)
			}
			cs.Lits = append(cs.Lits, Literal(v))
		}
		cs.Offsets = append(cs.Offsets, int32(len(cs.Lits)))
		if len(clause) == 0 {
			cs.EmptyClauseIndices = append(cs.EmptyClauseIndices, ci)
		}
	}
	return cs, nil
}

// NumClauses returns the number of clauses in the store.
func (cs *ClauseStore) NumClauses() int {
	return len(cs.Offsets) - 1
}

// Clause returns the literals of clause i as a slice into the shared
// buffer. Callers must not mutate the result.
func (cs *ClauseStore) Clause(i int) []Literal {
	return cs.Lits[cs.Offsets[i]:cs.Offsets[i+1]]
}

// ClauseLen returns the length of clause i without slicing.
func (cs *ClauseStore) ClauseLen(i int) int {
	return int(cs.Offsets[i+1] - cs.Offsets[i])
}
