package dpllsat

import "fmt"

// InputFormatError reports a configuration error in problem input: a
// clause referencing a variable outside the declared range, a zero
// literal, or an impossible generator parameter. NewClauseStore,
// NewSolver and Generate3SAT return it; ParseDIMACS reports malformed
// text with plain errors instead. Propagation and search never fail
// with an error (see Status instead).
type InputFormatError struct {
	msg string
}

func (e *InputFormatError) Error() string {
	return e.msg
}

func inputFormatErrorf(format string, args ...interface{}) error {
	return &InputFormatError{msg: fmt.Sprintf(format, args...)}
}
