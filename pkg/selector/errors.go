package selector

import "errors"

var (
	// ErrInvalidOperation is returned when the caller asks for something the
	// selector's variant forbids, such as clearing a Locked selector. It
	// indicates a wiring bug in the consumer.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidConfig wraps every configuration boundary failure.
	ErrInvalidConfig = errors.New("invalid selector config")

	// ErrUnmounted is returned by operations on an unmounted controller.
	ErrUnmounted = errors.New("selector unmounted")
)
