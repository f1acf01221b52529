package dpllsat

import "fmt"

// A Literal is a signed nonzero integer: +v denotes variable v true,
// -v denotes v false. The zero value is never a valid literal.
type Literal int32

// Var returns the variable that l refers to, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether l asserts its variable true (as opposed to
// its negation).
func (l Literal) Positive() bool {
	return l > 0
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", l)
}

// litIndex maps a literal into [0, 2*numVars], suitable for indexing a
// dense per-literal slice. Literals range over [-numVars, numVars]
// excluding 0.
func litIndex(l Literal, numVars int) int {
	return int(l) + numVars
}
