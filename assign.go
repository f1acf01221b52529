package dpllsat

// Assignment holds the tri-state value of each variable and the trail
// of variables assigned so far, in assignment order. Index 0 of
// values is unused; variables are numbered 1..NumVars.
type Assignment struct {
	values        []Value
	trail         []int32
	cursor        int
	assignedCount int
}

func newAssignment(numVars int) *Assignment {
	return &Assignment{
		values: make([]Value, numVars+1),
	}
}

// reset clears every variable back to Unassigned and empties the
// trail. Called at the start of every Solve.
func (a *Assignment) reset() {
	for i := range a.values {
		a.values[i] = Unassigned
	}
	a.trail = a.trail[:0]
	a.cursor = 0
	a.assignedCount = 0
}

// Assign sets the variable of l to the value l asserts. If the
// variable is already assigned consistently, it is a no-op that
// reports success without touching the trail. If it is assigned
// inconsistently, it reports a conflict.
func (a *Assignment) Assign(l Literal) bool {
	v := l.Var()
	want := True
	if !l.Positive() {
		want = False
	}
	cur := a.values[v]
	if cur == Unassigned {
		a.values[v] = want
		a.trail = append(a.trail, int32(v))
		a.assignedCount++
		return true
	}
	return cur == want
}

// Value reports the current truth value of literal l.
func (a *Assignment) Value(l Literal) Value {
	v := a.values[l.Var()]
	if v == Unassigned {
		return Unassigned
	}
	if l.Positive() {
		return v
	}
	return v.invert()
}

// VarValue reports the current truth value of variable v directly
// (True/False/Unassigned), independent of any literal's sign.
func (a *Assignment) VarValue(v int) Value {
	return a.values[v]
}

// TrailLen returns the current trail length, usable as a mark for
// UndoTo.
func (a *Assignment) TrailLen() int {
	return len(a.trail)
}

// UndoTo pops trail entries until the trail length equals mark,
// clearing each popped variable back to Unassigned. If the
// propagation cursor was beyond mark, it is pulled back to mark too.
func (a *Assignment) UndoTo(mark int) {
	for len(a.trail) > mark {
		v := a.trail[len(a.trail)-1]
		a.trail = a.trail[:len(a.trail)-1]
		a.values[v] = Unassigned
		a.assignedCount--
	}
	if a.cursor > mark {
		a.cursor = mark
	}
}

// AssignedCount returns the number of variables currently assigned.
func (a *Assignment) AssignedCount() int {
	return a.assignedCount
}

// NumVars returns the number of variables this assignment covers.
func (a *Assignment) NumVars() int {
	return len(a.values) - 1
}

// Model returns a complete Boolean model. Any variable still
// Unassigned (e.g. because it never appears in a clause) is reported
// as false.
func (a *Assignment) Model() []bool {
	model := make([]bool, a.NumVars()+1)
	for v := 1; v <= a.NumVars(); v++ {
		model[v] = a.values[v] == True
	}
	return model
}
