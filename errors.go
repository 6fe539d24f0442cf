package stockhist

import "errors"

// Errors returned by the engine. They are always wrapped with some context, test them
// with errors.Is.
var (
	// ErrInvalidArgument reports a malformed input: a non positive day count, an empty
	// registry, or a holding that cannot be valued.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRange reports an end date before the start date, or not strictly after
	// it where a span of time is required.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrNotFound reports a date absent from a history: a weekend, a holiday, or
	// missing data, these are indistinguishable.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientHistory reports a moving average that ran out of history.
	ErrInsufficientHistory = errors.New("insufficient history")
	// ErrUnknownSymbol reports a ticker that has not been registered.
	ErrUnknownSymbol = errors.New("unknown symbol")
)
