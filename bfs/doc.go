// Package bfs provides the backtracking planner of an exploration run: a
// breadth-first search over the discovered part of a map that returns the
// shortest walk to the nearest room that still has an unexplored exit.
//
// What
//
//   - Traverses resolved frontier cells only. Unknown cells lead nowhere known
//     yet and are never followed.
//   - Inspects rooms in non-decreasing distance (edge count) from the start;
//     the first dequeued room with an unknown exit is the target. The start
//     itself qualifies, at depth 0, with an empty path.
//   - Returns a Result with the label path, the rooms along it, and the depth.
//   - Returns ErrNoFrontier when no such room is reachable: the explored
//     region is closed and exploration of this component is complete.
//
// Determinism
//
//	frontier.Graph.Neighbors yields cells in canonical label order (n, e, s, w)
//	and the search enqueues in that order, so among several shortest paths the
//	same one is always returned.
//
// State
//
//	The visited set and parent links are local to one call. Two searches on
//	the same graph never share state.
//
// Complexity (V = rooms, E = resolved cells)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.FindNearestFrontier(g, current)
//	switch {
//	case errors.Is(err, bfs.ErrNoFrontier):
//	    // done
//	case err != nil:
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx error
//	default:
//	    // walk res.Path
//	}
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued room.
//   - WithMaxDepth(d):    do not expand beyond depth d (>0); 0 means no limit.
//   - WithOnEnqueue(fn):  hook called when a room is enqueued.
//   - WithOnDequeue(fn):  hook called before a room is inspected.
package bfs
