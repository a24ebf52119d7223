// Package flow implements maximum-flow / minimum-cut solvers over an
// index-addressed network with paired reverse edges.
//
// The solvers never see pixels, labels or rasters. A network only has to
// provide four capabilities:
//
//   - vertex enumeration and indexing (NumVertices),
//   - edge enumeration and indexing (NumEdges),
//   - incidence: out-edges of a vertex with their targets (Degree, Arc),
//   - a readable edge-capacity map (CapacityMap),
//
// plus the reverse pairing every residual network needs (Reverse). Any
// implementation of that contract, for example gridgraph.Graph, can be cut.
//
// The algorithms offered are:
//
//	Dinic (default)   BFS level graph + DFS blocking flow   O(V²·E), far better on grids
//	Edmonds–Karp      BFS shortest augmenting paths         O(V·E²)
//	Ford–Fulkerson    DFS any augmenting path               O(E·F) for total flow F
//
// All three share the Solver signature and return a Result holding the flow
// value, the residual capacity of every edge, and the cut: SideA for every
// vertex still reachable from the source through positive residual
// capacity, SideB for the rest.
//
// # Options
//
//	type Options struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	    Logger               *log.Logger     // debug log of augmentations
//	}
//
// # Errors
//
//	ErrSourceNotFound / ErrSinkNotFound - terminal index out of range.
//	ErrSameTerminal                     - source == sink.
//	EdgeError                           - negative capacity on an edge.
//	context.Canceled / DeadlineExceeded - Options.Ctx is done.
//
// A network whose Reverse is not an involution (Reverse(Reverse(e)) != e)
// violates the contract; the solvers do not validate it.
package flow
