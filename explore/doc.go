// Package explore is the exploration driver: it discovers a map it cannot see
// by asking an Oracle one move at a time, and records every move it makes.
//
// Algorithm
//
//	Each loop iteration performs one transition of a three-state machine.
//
//	  1. The current room is registered in the frontier graph; its exits are
//	     requested from the oracle on first visit only.
//	  2. Exploring: if the room still has unknown exits, one is chosen
//	     uniformly by the injected Picker and taken. The room reached is
//	     registered, and the exit is resolved in both directions at once.
//	     The inverse cell is resolved whenever it is still unknown, whether
//	     the neighbor is new or was reached earlier by another route.
//	  3. Backtracking: otherwise bfs.FindNearestFrontier plans the shortest
//	     walk over resolved exits to the nearest room with an unknown exit,
//	     and the walk is executed move by move. Every arrival is checked
//	     against the frontier graph.
//	  4. Done: no reachable room has an unknown exit.
//
//	The random walk alone may strand the explorer in an explored pocket; the
//	BFS fallback guarantees that every room reachable from the start is
//	eventually visited.
//
// Results and errors
//
//   - Result.Path is the full move sequence, exploring and backtracking moves
//     alike. It is appended to only and handed to the caller when Run returns.
//   - ErrInvalidMove (from the oracle) and ErrInconsistency (a resolution
//     contradicting an earlier one, or an exit without a way back) abort the
//     run. They point at a malformed map or a bug and are never swallowed.
//   - ErrIncomplete is returned together with a usable Result when more than
//     MaxRooms rooms were discovered. Whether that is a failure is the
//     caller's decision.
//
// Determinism
//
//	With a fixed-seed Picker (WithSeed) and a fixed map, two runs record
//	identical paths.
//
// Concurrency
//
//	A run is sequential. An Explorer must not run concurrently with itself;
//	separate Explorers over separate oracles are independent.
package explore
