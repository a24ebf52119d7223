package watershed

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lazyfill/progress"
)

var (
	// ErrNilLogger is the panic message of WithLogger(nil).
	ErrNilLogger = errors.New("watershed: logger is nil")

	// ErrNilProgress is the panic message of WithProgress(nil).
	ErrNilProgress = errors.New("watershed: progress updater is nil")

	// ErrBadCleanupParams is the panic message of WithCleanupParams with a
	// negative or non-finite field.
	ErrBadCleanupParams = errors.New("watershed: cleanup parameters must be finite and non-negative")

	// ErrBadCleanupAmount is returned by Run for a NaN cleanup amount.
	ErrBadCleanupAmount = errors.New("watershed: cleanup amount is NaN")
)

// CleanupParams tunes plane removal.
//
//	ForeignPortionBase, ForeignPortionSpan: threshold = base + span·(1 − amount)
//	MinMetric, MeanMetric: neighbour/plane edge ratios a plane must be dominated by
//	NarrowRegionRatio: filled/edge ratio below which a plane counts as narrow
type CleanupParams struct {
	ForeignPortionBase float64
	ForeignPortionSpan float64
	MinMetric          float64
	MeanMetric         float64
	NarrowRegionRatio  float64
}

// DefaultCleanupParams returns 0.05, 0.45, 1.0, 1.2 and 2.0.
func DefaultCleanupParams() CleanupParams {
	return CleanupParams{
		ForeignPortionBase: 0.05,
		ForeignPortionSpan: 0.45,
		MinMetric:          1.0,
		MeanMetric:         1.2,
		NarrowRegionRatio:  2.0,
	}
}

func (p CleanupParams) valid() bool {
	for _, v := range []float64{p.ForeignPortionBase, p.ForeignPortionSpan, p.MinMetric, p.MeanMetric, p.NarrowRegionRatio} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Options configures a Worker.
type Options struct {
	Logger   *log.Logger
	Progress progress.Updater
	Cleanup  CleanupParams
	// Strict turns invariant violations into panics instead of error logs.
	Strict bool
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns a silent, non-strict configuration with default
// cleanup parameters.
func DefaultOptions() Options {
	return Options{
		Logger:   log.New(io.Discard),
		Progress: progress.Noop,
		Cleanup:  DefaultCleanupParams(),
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// WithProgress sets the progress sink. Panics on nil.
func WithProgress(u progress.Updater) Option {
	return func(o *Options) {
		if u == nil {
			panic(ErrNilProgress.Error())
		}
		o.Progress = u
	}
}

// WithCleanupParams overrides the cleanup tuning. Panics on negative or
// non-finite values.
func WithCleanupParams(p CleanupParams) Option {
	return func(o *Options) {
		if !p.valid() {
			panic(ErrBadCleanupParams.Error())
		}
		o.Cleanup = p
	}
}

// WithStrict makes invariant violations panic.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}
