package gdparse

import (
	"fmt"

	"github.com/cwbudde/gdcst/internal/parse"
	"github.com/cwbudde/gdcst/pkg/token"
)

// OverflowError is returned when a call's reader-stack depth exceeds
// Settings.MaxReadingStack (spec.md §7 category 2).
type OverflowError struct {
	MaxDepth     int
	CurrentDepth int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("reading stack overflow: max depth %d, current depth %d", e.MaxDepth, e.CurrentDepth)
}

// CancelledError is returned when the caller's cancellation signal fired
// mid-parse; no tree is returned alongside it.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "parse cancelled" }

// LoopGuardError is returned when the infinite-loop guard trips: a reader
// failed to advance the token stream for more iterations than the guard
// tolerates.
type LoopGuardError struct {
	Pos token.Position
}

func (e *LoopGuardError) Error() string {
	return fmt.Sprintf("infinite-loop guard tripped at %s", e.Pos)
}

// InternalError reports a precondition breach inside the engine itself
// (spec.md §7 category 3) — a reader left in an impossible state. This is a
// programmer error in gdcst, not a malformed-input condition.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Detail)
}

// wrapErr translates internal/parse's typed failures to their pkg/gdparse
// equivalents, keeping internal/parse's error types out of the public API.
func wrapErr(err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *parse.OverflowError:
		return &OverflowError{MaxDepth: e.MaxDepth, CurrentDepth: e.CurrentDepth}
	case *parse.CancelledError:
		return &CancelledError{}
	case *parse.LoopGuardError:
		return &LoopGuardError{Pos: e.Pos}
	default:
		return &InternalError{Detail: err.Error()}
	}
}
