package flow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrSourceNotFound is returned when the source index is not a vertex.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the sink index is not a vertex.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrSameTerminal is returned when source and sink coincide.
var ErrSameTerminal = errors.New("flow: source and sink are the same vertex")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	Edge int
	Cap  int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d: %d", e.Edge, e.Cap)
}

// Network is the index-addressed graph a solver runs on. Every edge must
// have a distinct paired reverse edge, and Reverse must be an involution.
type Network interface {
	NumVertices() int
	NumEdges() int
	// Degree returns the number of out-edges of vertex v.
	Degree(v int) int
	// Arc returns the i-th out-edge of v and its target vertex.
	Arc(v, i int) (edge, to int)
	// Reverse returns the paired reverse of edge.
	Reverse(edge int) int
}

// CapacityMap is a read-only edge-capacity map.
type CapacityMap interface {
	Capacity(edge int) int64
}

// CapacityFunc adapts a plain function to CapacityMap.
type CapacityFunc func(edge int) int64

// Capacity calls f(edge).
func (f CapacityFunc) Capacity(edge int) int64 { return f(edge) }

// Side labels a vertex after the cut.
type Side uint8

const (
	// SideB is the sink side: not reachable from the source in the residual network.
	SideB Side = iota
	// SideA is the source side.
	SideA
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Result is the outcome of one max-flow run.
type Result struct {
	// MaxFlow is the value of the maximum flow (= capacity of the minimum cut).
	MaxFlow int64
	// Residual holds the remaining capacity of every edge, indexed like the network.
	Residual []int64
	// Sides holds the cut side of every vertex, indexed like the network.
	Sides []Side
}

// Solver is the shared signature of Dinic, EdmondsKarp and FordFulkerson.
type Solver func(net Network, caps CapacityMap, source, sink int, opts Options) (Result, error)

// Options configures all max-flow algorithms.
//   - Ctx: cancellation; nil means context.Background().
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations (0 = never early).
//   - Logger: receives a debug line per augmentation; nil discards.
type Options struct {
	Ctx                  context.Context
	LevelRebuildInterval int
	Logger               *log.Logger
}

// DefaultOptions returns production defaults: background context, no early
// level rebuilds, discarded logging.
func DefaultOptions() Options {
	return Options{
		Ctx:                  context.Background(),
		LevelRebuildInterval: 0,
		Logger:               log.New(io.Discard),
	}
}

// normalize fills zero values with defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// ErrUnknownSolver is returned by SolverByName for an unrecognised name.
var ErrUnknownSolver = errors.New("flow: unknown solver")

// SolverByName maps "dinic", "edmonds-karp" and "ford-fulkerson" to their
// Solver. The empty name selects Dinic.
func SolverByName(name string) (Solver, error) {
	switch name {
	case "", "dinic":
		return Dinic, nil
	case "edmonds-karp":
		return EdmondsKarp, nil
	case "ford-fulkerson":
		return FordFulkerson, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}
