/*
errors.go - Error types for schedule generation

PURPOSE:
  Generation itself is infallible: the roster and holiday table are deploy
  time constants and date arithmetic over a bounded window cannot fail. The
  only error surface is input validation (bad year/month) and override
  application (unknown employee, bad shift name).

USAGE:
  if errors.Is(err, rota.ErrInvalidArgument) { ... }

  var argErr *rota.InvalidArgumentError
  if errors.As(err, &argErr) { ... argErr.Field ... }

SEE ALSO:
  - generator.go: Validates (year, month) before building the window
  - override.go: Validates manual shift moves
*/
package rota

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is returned for out-of-range year or month input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownEmployee is returned when an override names someone not on
	// the roster for that day.
	ErrUnknownEmployee = errors.New("unknown employee")

	// ErrUnknownShift is returned when an override targets a shift bucket
	// that does not exist.
	ErrUnknownShift = errors.New("unknown shift")

	// ErrDayNotInWindow is returned when an override's date falls outside
	// the generated window.
	ErrDayNotInWindow = errors.New("day not in generated window")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidArgumentError reports which generation input was out of range.
type InvalidArgumentError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }
