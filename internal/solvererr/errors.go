// apps/go-solver/internal/solvererr/errors.go
//
// Error taxonomy shared by the solver core.
//
// Every error returned by the candidate set, strategies and solver wraps
// ErrSolver, so callers can branch with errors.Is on either the specific
// kind or the base kind.
//
//   - ErrMissingPosition:    a Mandatory/Misplaced rule was given without a position.
//   - ErrPositionOutOfRange: a rule position falls outside the word length.
//   - ErrNoMoreGuesses:      the candidate set is empty (contradictory feedback
//                            or exhausted dictionary).
//   - ErrInvalidArgument:    helper/constructor argument validation.
package solvererr

import (
	"errors"
	"fmt"
)

// ErrSolver is the base kind for all solver errors.
var ErrSolver = errors.New("solver error")

var (
	ErrMissingPosition    = fmt.Errorf("%w: missing position", ErrSolver)
	ErrPositionOutOfRange = fmt.Errorf("%w: position out of range", ErrSolver)
	ErrNoMoreGuesses      = fmt.Errorf("%w: no more guesses", ErrSolver)
	ErrInvalidArgument    = fmt.Errorf("%w: invalid argument", ErrSolver)
)
