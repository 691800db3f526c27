// Package verify replays a recorded move sequence against the full map and
// reports which rooms it visited. It is an acceptance check run after
// exploration; it never takes part in exploring.
package verify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/label"
)

// Sentinel errors for coverage verification.
var (
	// ErrTruthNil is returned when no ground truth is supplied.
	ErrTruthNil = errors.New("verify: ground truth is nil")

	// ErrStartNotFound indicates the start room is not part of the ground truth.
	ErrStartNotFound = errors.New("verify: start room not found")

	// ErrVerificationFailed is the kind of Report.Err when some room was never visited.
	ErrVerificationFailed = errors.New("verify: incomplete traversal")
)

// Truth is the full map, with no hidden exits. *world.World satisfies it.
type Truth interface {
	Rooms() []int
	Neighbor(room int, l label.Label) (int, bool)
}

// Report is the outcome of a replay.
type Report struct {
	Visited   int   // distinct rooms visited, start included
	Total     int   // rooms in the ground truth
	OK        bool  // Visited == Total
	Moves     int   // length of the replayed path
	Unvisited []int // rooms never visited, ascending
}

// VerificationFailedError reports how many rooms a path missed.
type VerificationFailedError struct {
	Unvisited int
	Total     int
}

func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("verify: incomplete traversal: %d of %d rooms unvisited", e.Unvisited, e.Total)
}

// Is makes errors.Is(err, ErrVerificationFailed) hold.
func (e *VerificationFailedError) Is(target error) bool {
	return target == ErrVerificationFailed
}

// Err returns nil for a full traversal and a *VerificationFailedError otherwise.
func (r *Report) Err() error {
	if r.OK {
		return nil
	}
	return &VerificationFailedError{Unvisited: len(r.Unvisited), Total: r.Total}
}

// Coverage replays path from start over truth and counts distinct rooms visited.
//
// A label that is not an exit of the room reached so far fails with an error
// wrapping explore.ErrInvalidMove and naming the step. Coverage is a pure
// function of its inputs and never mutates truth.
//
// Complexity: O(V log V + len(path)).
func Coverage(start int, path []label.Label, truth Truth) (*Report, error) {
	if truth == nil {
		return nil, ErrTruthNil
	}
	rooms := truth.Rooms()
	known := make(map[int]bool, len(rooms))
	for _, id := range rooms {
		known[id] = true
	}
	if !known[start] {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	visited := map[int]bool{start: true}
	cur := start
	for i, l := range path {
		to, ok := truth.Neighbor(cur, l)
		if !ok {
			return nil, fmt.Errorf("verify: step %d: %w: room %d has no %s exit", i, explore.ErrInvalidMove, cur, l)
		}
		cur = to
		visited[cur] = true
	}

	rep := &Report{
		Visited: len(visited),
		Total:   len(rooms),
		Moves:   len(path),
	}
	for _, id := range rooms {
		if !visited[id] {
			rep.Unvisited = append(rep.Unvisited, id)
		}
	}
	sort.Ints(rep.Unvisited)
	rep.OK = rep.Visited == rep.Total
	return rep, nil
}
