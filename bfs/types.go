// Package bfs provides tunable options and error definitions
// for the nearest-frontier breadth-first search over a frontier.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roamer/label"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start room is not registered.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoFrontier is returned when no room with an unknown exit is reachable
	// through resolved cells. The explored region is closed.
	ErrNoFrontier = errors.New("bfs: no reachable frontier")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when FindNearestFrontier is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize the search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a room is enqueued, with its depth from the start.
	OnEnqueue func(id int, depth int)

	// OnDequeue is called immediately before a room is inspected.
	OnDequeue func(id int, depth int)

	// MaxDepth, if > 0, stops expanding beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with background context,
// no depth limit and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result describes the nearest frontier room found by the search.
//   - Target: the first dequeued room with at least one unknown exit.
//   - Path: exit labels leading from the start to Target (empty if start is the target).
//   - Rooms: the rooms along the path, start first and Target last.
//   - Depth: len(Path).
//   - Visited: number of rooms dequeued before the search stopped.
type Result struct {
	Target  int
	Path    []label.Label
	Rooms   []int
	Depth   int
	Visited int
}
