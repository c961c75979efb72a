package geom

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperand is returned when an operator or predicate receives a
// value of a type it does not handle.
var ErrUnsupportedOperand = errors.New("unsupported operand")

// OperandError reports the operator and the value it rejected.
type OperandError struct {
	Op      string
	Operand any
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("geom: %v: %T for %s", ErrUnsupportedOperand, e.Operand, e.Op)
}

// Unwrap returns ErrUnsupportedOperand.
func (e *OperandError) Unwrap() error {
	return ErrUnsupportedOperand
}

func unsupported(op string, v any) error {
	return &OperandError{Op: op, Operand: v}
}
