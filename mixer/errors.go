package mixer

import (
	"errors"
	"fmt"
)

var (
	// ErrParameterRange matches every ParameterRangeError.
	ErrParameterRange = errors.New("parameter out of range")
	// ErrComputationOverflow matches every ComputationOverflowError.
	ErrComputationOverflow = errors.New("computation overflow")
	// ErrRewardOverflow is returned when a score does not fit into uint64.
	ErrRewardOverflow = errors.New("reward overflow")
	// ErrWeightOverflow is returned when mixed weights do not fit into uint64.
	ErrWeightOverflow = errors.New("weight overflow")
	// ErrUnknownKind is returned for unsupported function kinds.
	ErrUnknownKind = errors.New("unknown function kind")
)

// ParameterRangeError describes a function parameter outside of its domain.
type ParameterRangeError struct {
	Name  string
	Value string
	Bound string
}

func (e *ParameterRangeError) Error() string {
	return fmt.Sprintf("parameter %s = %s out of range, must be %s", e.Name, e.Value, e.Bound)
}

// Is implements errors.Is interface.
func (e *ParameterRangeError) Is(target error) bool {
	return target == ErrParameterRange
}

// ComputationOverflowError describes a failed intermediate computation.
type ComputationOverflowError struct {
	Op  string
	Err error
}

func (e *ComputationOverflowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("computation overflow in %s: %v", e.Op, e.Err)
	}
	return "computation overflow in " + e.Op
}

// Is implements errors.Is interface.
func (e *ComputationOverflowError) Is(target error) bool {
	return target == ErrComputationOverflow
}

func (e *ComputationOverflowError) Unwrap() error {
	return e.Err
}
