// Package settings holds the per-call configuration for every entry point
// in pkg/gdparse (spec.md §6). Settings are always passed by value into a
// parse call; the engine itself holds none of its own (spec.md §5
// "Mutable configuration").
package settings

// Settings configures a single parse call.
type Settings struct {
	// MaxReadingStack bounds reader-stack depth (spec.md I5). Exceeding it
	// surfaces a typed overflow. Zero disables the check entirely.
	MaxReadingStack int

	// CancellationCheckInterval is the number of characters between polls
	// of Cancel. Zero disables polling.
	CancellationCheckInterval int

	// Cancel is polled at CancellationCheckInterval; when it returns true,
	// parsing abandons its partial tree and returns a typed cancellation
	// error. Nil is treated as "never cancel".
	Cancel func() bool

	// TabVisualWidth is the width a tab contributes to indentation-width
	// comparisons (spec.md §4.3). Never affects round-trip text.
	TabVisualWidth int

	// InfiniteLoopGuard, when true, trips a typed failure if the dispatch
	// loop fails to advance the token stream for more than a bounded
	// number of iterations (spec.md §7).
	InfiniteLoopGuard bool
}

// Option configures a Settings value, following the teacher's
// functional-option idiom (internal/lexer.LexerOption,
// internal/parser.ParserBuilder).
type Option func(*Settings)

// Default returns the spec's documented defaults (spec.md §6):
// MaxReadingStack=64, CancellationCheckInterval=256, TabVisualWidth=4,
// InfiniteLoopGuard=true.
func Default() Settings {
	return Settings{
		MaxReadingStack:           64,
		CancellationCheckInterval: 256,
		TabVisualWidth:            4,
		InfiniteLoopGuard:         true,
	}
}

// New builds a Settings value from Default(), applying opts in order.
func New(opts ...Option) Settings {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithMaxReadingStack overrides the reader-stack depth cap. A value <= 0
// disables the check.
func WithMaxReadingStack(n int) Option {
	return func(s *Settings) { s.MaxReadingStack = n }
}

// WithCancellationCheckInterval overrides how often Cancel is polled. A
// value <= 0 disables polling.
func WithCancellationCheckInterval(n int) Option {
	return func(s *Settings) { s.CancellationCheckInterval = n }
}

// WithCancel installs the cancellation signal.
func WithCancel(fn func() bool) Option {
	return func(s *Settings) { s.Cancel = fn }
}

// WithTabVisualWidth overrides the tab visual width used for indentation
// comparisons.
func WithTabVisualWidth(n int) Option {
	return func(s *Settings) { s.TabVisualWidth = n }
}

// WithInfiniteLoopGuard toggles the infinite-loop guard.
func WithInfiniteLoopGuard(enabled bool) Option {
	return func(s *Settings) { s.InfiniteLoopGuard = enabled }
}
