package parse

import (
	"fmt"

	"github.com/cwbudde/gdcst/pkg/token"
)

// OverflowKind identifies which resource bound was exceeded. Only one kind
// exists today (spec.md §6/§7), but the type keeps the door open without
// an API break.
type OverflowKind int

const (
	OverflowReadingStack OverflowKind = iota
)

func (k OverflowKind) String() string {
	switch k {
	case OverflowReadingStack:
		return "ReadingStack"
	default:
		return "Unknown"
	}
}

// OverflowError is the typed reader-stack-depth failure (spec.md §7
// category 2).
type OverflowError struct {
	Kind         OverflowKind
	MaxDepth     int
	CurrentDepth int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("reading stack overflow (%s): max depth %d, current depth %d", e.Kind, e.MaxDepth, e.CurrentDepth)
}

// CancelledError is surfaced when the supplied cancellation signal fires
// mid-parse; no tree is returned (spec.md §5, §7 category 2).
type CancelledError struct{}

func (e *CancelledError) Error() string { return "parse cancelled" }

// LoopGuardError is surfaced when the dispatch loop fails to make forward
// progress for more than the configured number of iterations — a reader
// bug or pathological input (spec.md §7 category 2).
type LoopGuardError struct {
	Pos token.Position
}

func (e *LoopGuardError) Error() string {
	return fmt.Sprintf("infinite-loop guard tripped at %s", e.Pos)
}

// maxStall is how many consecutive no-progress loop iterations the guard
// tolerates before tripping.
const maxStall = 3

// depth guards reader-stack depth (spec.md I5). enter returns false once a
// typed failure has latched (either from this call or an earlier one);
// callers must check it and return a Bad* placeholder without recursing
// further.
func (p *Parser) enter() bool {
	if p.err != nil {
		return false
	}
	p.depth++
	if p.settings.MaxReadingStack > 0 && p.depth > p.settings.MaxReadingStack {
		p.err = &OverflowError{Kind: OverflowReadingStack, MaxDepth: p.settings.MaxReadingStack, CurrentDepth: p.depth}
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// checkCancel polls the cancellation signal at most once per
// CancellationCheckInterval characters consumed.
func (p *Parser) checkCancel() {
	if p.err != nil || p.settings.Cancel == nil || p.settings.CancellationCheckInterval <= 0 {
		return
	}
	offset := p.lx.Pos().Offset
	if offset-p.lastCancelOffset >= p.settings.CancellationCheckInterval {
		p.lastCancelOffset = offset
		if p.settings.Cancel() {
			p.err = &CancelledError{}
		}
	}
}

// failed reports whether a category-2/3 typed failure has latched; callers
// throughout internal/parse check this to unwind quickly without doing
// further (meaningless) work once one has occurred.
func (p *Parser) failed() bool {
	return p.err != nil
}

// loopTracker detects a dispatch loop that stops advancing the token
// cursor — the infinite-loop guard (spec.md §7, §9 Open Questions).
type loopTracker struct {
	lastIdx int
	stall   int
}

func newLoopTracker() loopTracker {
	return loopTracker{lastIdx: -1}
}

// tick must be called once per iteration of any while-style loop that is
// expected to always consume at least one token; it returns true once the
// guard trips, at which point the caller must break out immediately.
func (p *Parser) tick(lt *loopTracker) bool {
	if p.err != nil {
		return true
	}
	idx := p.cur.Mark()
	if idx == lt.lastIdx {
		lt.stall++
		if p.settings.InfiniteLoopGuard && lt.stall > maxStall {
			p.err = &LoopGuardError{Pos: p.cur.Current().Pos}
			return true
		}
	} else {
		lt.stall = 0
	}
	lt.lastIdx = idx
	return false
}
