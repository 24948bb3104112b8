package mealy

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Option configures an engine during construction.
type Option func(*Engine) error

// New creates an engine over the given table. The initial state defaults to
// 0 and must lie inside the table's state range; the table reference is kept
// for the engine's lifetime and is never mutated.
func New(table TransitionTable, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrNilTable
	}

	e := &Engine{
		id:    uuid.New(),
		table: table,
		log:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.initial < 0 || int(e.initial) >= table.NumStates() {
		return nil, NewErrInvalidState(e.initial, table.NumStates())
	}
	e.current = e.initial
	e.log = e.log.With(slog.String("engine_id", e.id.String()))

	return e, nil
}

// MustNew creates an engine and panics if construction fails, following
// the fail-fast pattern for wiring done at program start.
func MustNew(table TransitionTable, opts ...Option) *Engine {
	e, err := New(table, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create mealy engine: %v", err))
	}
	return e
}

// WithInitialState sets the state the engine starts in and returns to on
// Reset. New validates it against the table's state range.
func WithInitialState(s State) Option {
	return func(e *Engine) error {
		e.initial = s
		return nil
	}
}

// WithSelfLoopFallback makes the engine absorb undefined transitions by
// holding its state and emitting NoOutput instead of failing the call.
// Without it an undefined transition aborts the whole Step.
func WithSelfLoopFallback() Option {
	return func(e *Engine) error {
		e.fallback = true
		return nil
	}
}

// WithLogger attaches a logger for debug-level transition tracing. The
// default discards everything; a nil logger keeps the default.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) error {
		if log != nil {
			e.log = log
		}
		return nil
	}
}
