// Package frontier holds the partially discovered graph an explorer builds
// while it walks an unknown map.
//
// What
//
//   - One entry per room reached so far, created lazily on first visit with
//     every exit the room really has set to Unknown.
//   - Each (room, label) cell is a tagged value: Unknown or ResolvedTo(id).
//     There is no sentinel room id.
//   - Cells only move from Unknown to Resolved; rooms are never removed.
//     ResolvedCount therefore never decreases over a run.
//
// Contract
//
//	Resolve on an Unknown cell records the neighbor. Resolve with the same
//	neighbor again is a no-op. Resolve with a different neighbor fails with an
//	*InconsistencyError (errors.Is(err, ErrInconsistency)) carrying the room,
//	label, expected and actual ids. Keeping the inverse cell at the neighbor
//	consistent is the caller's job; the explore package always resolves both
//	directions in one step.
//
// Determinism
//
//	UnknownLabels and Neighbors return labels in canonical order (n, e, s, w)
//	and Vertices returns rooms in discovery order, so any walk driven by this
//	graph is reproducible.
//
// Concurrency
//
//	A Graph belongs to a single exploration run and is not safe for concurrent
//	mutation.
package frontier
