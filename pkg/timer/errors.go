package timer

import "errors"

var (
	// ErrInvalidSettings is returned when timing settings are unusable.
	ErrInvalidSettings = errors.New("invalid timing settings")
	// ErrInvalidRunCount is returned when a repeated timing is asked for fewer than one run.
	ErrInvalidRunCount = errors.New("run count must be at least 1")
	// ErrBadCallable is returned when Call cannot bind a function to its arguments.
	ErrBadCallable = errors.New("bad callable")
	// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
	ErrUnknownUnit = errors.New("unknown duration unit")
	// ErrTypeMismatch is returned when a stored result is extracted as the wrong type.
	ErrTypeMismatch = errors.New("result type mismatch")
	// ErrNoResult is returned when extracting a result that was never stored.
	ErrNoResult = errors.New("no result stored")
	// ErrOutOfRange is returned when a run index is outside the batch.
	ErrOutOfRange = errors.New("run index out of range")
	// ErrNotEnded is returned when a block timing is shown before End.
	ErrNotEnded = errors.New("block timing has not ended")
	// ErrNoSamples indicates that no samples were collected.
	ErrNoSamples = errors.New("no samples collected")
)
