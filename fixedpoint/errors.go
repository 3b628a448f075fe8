package fixedpoint

import "errors"

var (
	// ErrOverflow is returned when the result of an operation can not be
	// represented by the target type.
	ErrOverflow = errors.New("fixed-point overflow")
	// ErrNegative is returned when a negative value is converted into an
	// unsigned type or an unsigned subtraction goes below zero.
	ErrNegative = errors.New("negative value")
	// ErrDivisionByZero is returned by division and remainder operations.
	ErrDivisionByZero = errors.New("division by zero")
)
