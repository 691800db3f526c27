// Package explore drives the discovery of an unknown map through an Oracle,
// recording one linear sequence of moves that visits every reachable room.
package explore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/roamer/bfs"
	"github.com/katalvlaran/roamer/frontier"
	"github.com/katalvlaran/roamer/label"
)

// Explorer runs exploration against one Oracle.
type Explorer struct {
	oracle Oracle
	opts   Options
}

// New validates the options and returns an Explorer bound to oracle.
func New(oracle Oracle, opts ...Option) (*Explorer, error) {
	if oracle == nil {
		return nil, ErrOracleNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Explorer{oracle: oracle, opts: o}, nil
}

// Explore is New followed by Run.
func Explore(oracle Oracle, opts ...Option) (*Result, error) {
	e, err := New(oracle, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// run holds the mutable state of one Run call.
type run struct {
	oracle Oracle
	opts   Options
	ctx    context.Context
	log    *zap.Logger
	graph  *frontier.Graph
	res    *Result
	state  State
}

// Run explores from the oracle's current room until no reachable room has an
// unknown exit, or until the room ceiling is exceeded.
//
// On completion it returns a Result with Complete == true. When the ceiling
// stops the run it returns the Result with Complete == false together with an
// error wrapping ErrIncomplete. Oracle failures (ErrInvalidMove) and
// conflicting resolutions (ErrInconsistency) abort the run and return a nil Result.
func (e *Explorer) Run() (*Result, error) {
	start := e.oracle.Current()
	r := &run{
		oracle: e.oracle,
		opts:   e.opts,
		ctx:    e.opts.Ctx,
		graph:  frontier.New(),
		state:  Exploring,
		res: &Result{
			RunID: uuid.NewString(),
			Start: start,
		},
	}
	r.res.Graph = r.graph
	r.log = e.opts.Logger.With(zap.String("run_id", r.res.RunID))

	r.log.Info("exploration started",
		zap.Int("start", start),
		zap.Int("max_rooms", e.opts.MaxRooms))

	if err := r.loop(); err != nil {
		if errors.Is(err, ErrIncomplete) {
			r.log.Warn("exploration incomplete",
				zap.Int("rooms", r.graph.Len()),
				zap.Int("moves", len(r.res.Path)),
				zap.Int("unknown_exits", r.graph.UnknownCount()))
			return r.finish(false), err
		}
		r.log.Error("exploration aborted", zap.Error(err), zap.Int("moves", len(r.res.Path)))
		return nil, err
	}

	r.log.Info("exploration finished",
		zap.Int("rooms", r.graph.Len()),
		zap.Int("moves", len(r.res.Path)),
		zap.Int("backtracks", r.res.Backtracks))
	return r.finish(true), nil
}

func (r *run) finish(complete bool) *Result {
	r.res.Complete = complete
	r.res.Rooms = r.graph.Len()
	return r.res
}

// loop is the state machine: one transition per iteration.
func (r *run) loop() error {
	for r.state != Done {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		cur := r.oracle.Current()
		if err := r.register(cur); err != nil {
			return err
		}
		if err := r.checkCeiling(); err != nil {
			return err
		}

		if unknown := r.graph.UnknownLabels(cur); len(unknown) > 0 {
			r.state = Exploring
			if err := r.extend(cur, unknown); err != nil {
				return err
			}
			continue
		}

		plan, err := bfs.FindNearestFrontier(r.graph, cur, bfs.WithContext(r.ctx))
		if errors.Is(err, bfs.ErrNoFrontier) {
			r.state = Done
			continue
		}
		if err != nil {
			return fmt.Errorf("explore: plan from room %d: %w", cur, err)
		}
		r.state = Backtracking
		if err := r.backtrack(cur, plan); err != nil {
			return err
		}
	}
	return nil
}

// register adds room id to the frontier graph on first visit, asking the
// oracle for its exits.
func (r *run) register(id int) error {
	if r.graph.HasVertex(id) {
		return nil
	}
	exits, err := r.oracle.Exits(id)
	if err != nil {
		return fmt.Errorf("explore: exits of room %d: %w", id, err)
	}
	r.graph.EnsureVertex(id, exits)
	r.log.Debug("room discovered",
		zap.Int("room", id),
		zap.Int("exits", len(exits)),
		zap.Int("rooms", r.graph.Len()))
	return nil
}

// checkCeiling fails with ErrIncomplete once more than MaxRooms rooms are known.
func (r *run) checkCeiling() error {
	if r.graph.Len() > r.opts.MaxRooms {
		return fmt.Errorf("%w: discovered %d rooms, ceiling %d", ErrIncomplete, r.graph.Len(), r.opts.MaxRooms)
	}
	return nil
}

// extend takes one uniformly chosen unknown exit of cur and resolves it in
// both directions. Every move on Result.Path is resolved in the frontier
// graph before the ceiling is checked.
func (r *run) extend(cur int, unknown []label.Label) error {
	i := r.opts.Picker.Pick(len(unknown))
	if i < 0 || i >= len(unknown) {
		return fmt.Errorf("%w: picker returned %d for %d candidates", ErrOptionViolation, i, len(unknown))
	}
	l := unknown[i]

	to, err := r.oracle.Move(l)
	if err != nil {
		return fmt.Errorf("explore: move %s from room %d: %w", l, cur, err)
	}
	r.res.Path = append(r.res.Path, l)
	r.res.ExploreMoves++

	if err := r.register(to); err != nil {
		return err
	}
	if err := r.resolvePair(cur, l, to); err != nil {
		return err
	}
	r.step(cur, l, to)
	return r.checkCeiling()
}

// resolvePair records cur --l--> to and, while it is still unknown, the
// inverse cell to --l⁻¹--> cur. Conflicts with earlier resolutions are fatal.
func (r *run) resolvePair(cur int, l label.Label, to int) error {
	if err := r.graph.Resolve(cur, l, to); err != nil {
		return err
	}
	inv := l.Inverse()
	if _, ok := r.graph.Cell(to, inv); !ok {
		return fmt.Errorf("%w: room %d reached from %d via %s has no %s exit back",
			ErrInconsistency, to, cur, l, inv)
	}
	return r.graph.Resolve(to, inv, cur)
}

// backtrack walks plan one exit at a time, checking every arrival against
// the frontier graph.
func (r *run) backtrack(cur int, plan *bfs.Result) error {
	r.res.Backtracks++
	r.log.Debug("backtracking",
		zap.Int("from", cur),
		zap.Int("target", plan.Target),
		zap.Int("length", len(plan.Path)))

	for _, l := range plan.Path {
		c, ok := r.graph.Cell(cur, l)
		if !ok {
			return fmt.Errorf("%w: plan leaves room %d via %s, which it does not have",
				ErrInconsistency, cur, l)
		}
		want, ok := c.To()
		if !ok {
			return fmt.Errorf("%w: plan leaves room %d via unresolved exit %s",
				ErrInconsistency, cur, l)
		}

		to, err := r.oracle.Move(l)
		if err != nil {
			return fmt.Errorf("explore: backtrack %s from room %d: %w", l, cur, err)
		}
		r.res.Path = append(r.res.Path, l)
		r.res.BacktrackMoves++
		if to != want {
			return &frontier.InconsistencyError{Vertex: cur, Label: l, Expected: want, Actual: to}
		}
		r.step(cur, l, to)
		cur = to
	}
	return nil
}

// step reports the last move to the OnStep hook.
func (r *run) step(from int, l label.Label, to int) {
	r.opts.OnStep(Step{
		Index:    len(r.res.Path) - 1,
		State:    r.state,
		From:     from,
		Label:    l,
		To:       to,
		Rooms:    r.graph.Len(),
		Resolved: r.graph.ResolvedCount(),
		Graph:    r.graph,
	})
}
