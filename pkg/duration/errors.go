package duration

import "errors"

var (
	// ErrInvalidDuration is returned when an operation would produce or
	// consume a non-finite or unrepresentable magnitude.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidRange is returned when an operation's precondition on its
	// arguments doesn't hold, e.g. Clamp with min > max.
	ErrInvalidRange = errors.New("invalid range")

	// ErrDivideByZero is returned by Div when the divisor is exactly zero.
	// It matches both ErrInvalidRange and ErrInvalidDuration with errors.Is.
	ErrDivideByZero error = divideByZeroError{}
)

type divideByZeroError struct{}

func (divideByZeroError) Error() string { return "division by zero" }

func (divideByZeroError) Is(target error) bool {
	return target == ErrInvalidRange || target == ErrInvalidDuration
}
