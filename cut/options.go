package cut

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lazyfill/flow"
)

var (
	// ErrNilSolver is the panic message of WithSolver(nil).
	ErrNilSolver = errors.New("cut: solver is nil")

	// ErrNilLogger is the panic message of WithLogger(nil).
	ErrNilLogger = errors.New("cut: logger is nil")

	// ErrNilContext is the panic message of WithContext(nil).
	ErrNilContext = errors.New("cut: context is nil")

	// ErrBadRebuildInterval is the panic message of a negative WithLevelRebuildInterval.
	ErrBadRebuildInterval = errors.New("cut: level rebuild interval must be non-negative")
)

// Options configures CutOneWay and MultiwayCut.
type Options struct {
	Solver flow.Solver
	Flow   flow.Options
	Logger *log.Logger
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns Dinic with background context and a silent logger.
func DefaultOptions() Options {
	return Options{
		Solver: flow.Dinic,
		Flow:   flow.DefaultOptions(),
		Logger: log.New(io.Discard),
	}
}

// WithSolver selects the max-flow solver. Panics on nil.
func WithSolver(s flow.Solver) Option {
	return func(o *Options) {
		if s == nil {
			panic(ErrNilSolver.Error())
		}
		o.Solver = s
	}
}

// WithLogger routes engine and solver debug output to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
		o.Flow.Logger = l
	}
}

// WithContext makes the solver honour ctx. Panics on nil.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			panic(ErrNilContext.Error())
		}
		o.Flow.Ctx = ctx
	}
}

// WithLevelRebuildInterval forwards Options.LevelRebuildInterval to Dinic.
// Panics if n < 0.
func WithLevelRebuildInterval(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadRebuildInterval.Error())
		}
		o.Flow.LevelRebuildInterval = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
