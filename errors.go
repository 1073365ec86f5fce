package patmat

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by Match when no clause accepts the scrutinee.
var ErrNoMatch = errors.New("no patterns got matched")

// StructuralError reports an ill-formed pattern, e.g. a destructure holding
// more than one splice, or a binding splice applied to a non-array tuple.
// Structural errors are raised as early as possible: at construction time
// where the pattern alone suffices, otherwise when the offending scrutinee
// shape is first seen.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("[StructuralError] %s", e.Msg)
}

// InvalidIdentifierRead reports reading a capture from an identifier cell
// which cannot produce it: Value on an empty cell, or MutableValue on a cell
// holding a borrowed reference.
type InvalidIdentifierRead struct {
	Op string
}

func (e *InvalidIdentifierRead) Error() string {
	return fmt.Sprintf("[InvalidIdentifierRead] %s", e.Op)
}

func structuralPanic(format string, args ...interface{}) {
	panic(&StructuralError{Msg: fmt.Sprintf(format, args...)})
}
