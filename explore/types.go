package explore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/roamer/frontier"
	"github.com/katalvlaran/roamer/label"
)

// Sentinel errors for exploration runs.
var (
	// ErrOracleNil is returned when New is given a nil oracle.
	ErrOracleNil = errors.New("explore: oracle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")

	// ErrInvalidMove is the error kind an Oracle reports for a label that is
	// not an exit of the current room. It aborts the run.
	ErrInvalidMove = errors.New("explore: invalid move")

	// ErrIncomplete is returned together with a Result when the room ceiling
	// was exceeded before exploration finished. The Result is still valid.
	ErrIncomplete = errors.New("explore: room ceiling reached before exploration finished")

	// ErrInconsistency is frontier.ErrInconsistency, re-exported for callers
	// that only import explore.
	ErrInconsistency = frontier.ErrInconsistency
)

// DefaultMaxRooms is the room ceiling applied when WithMaxRooms is not given.
const DefaultMaxRooms = 500

// Oracle is the only way an explorer learns about the map.
type Oracle interface {
	// Current returns the room the explorer stands in.
	Current() int
	// Exits returns the true exit labels of a room.
	Exits(room int) ([]label.Label, error)
	// Move leaves the current room via l and returns the room reached.
	// A label that is not an exit fails with an error wrapping ErrInvalidMove.
	Move(l label.Label) (int, error)
}

// State is the phase of the exploration state machine.
type State int

const (
	// Exploring: the current room has at least one unknown exit.
	Exploring State = iota
	// Backtracking: walking a planned path toward the nearest frontier room.
	Backtracking
	// Done: no reachable room has an unknown exit.
	Done
)

func (s State) String() string {
	switch s {
	case Exploring:
		return "exploring"
	case Backtracking:
		return "backtracking"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Step describes one move, passed to the OnStep hook after the frontier
// graph has been updated for it.
type Step struct {
	Index    int         // position of the move in the recorded path
	State    State       // Exploring or Backtracking
	From     int         // room left
	Label    label.Label // exit taken
	To       int         // room reached
	Rooms    int         // rooms discovered so far
	Resolved int         // resolved frontier cells so far
	Graph    *frontier.Graph
}

// Option configures an Explorer via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables of an exploration run.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// Picker chooses among unknown exits. Defaults to NewRandPicker(0).
	Picker Picker

	// MaxRooms is the safety valve: exploration stops as incomplete once more
	// than MaxRooms distinct rooms have been discovered.
	MaxRooms int

	// Logger receives structured progress logs. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnStep is called after every move.
	OnStep func(Step)

	err error
}

// DefaultOptions returns Options with background context, a deterministic
// picker, DefaultMaxRooms, a no-op logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Picker:   NewRandPicker(0),
		MaxRooms: DefaultMaxRooms,
		Logger:   zap.NewNop(),
		OnStep:   func(Step) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPicker injects the source of randomness.
func WithPicker(p Picker) Option {
	return func(o *Options) {
		if p == nil {
			o.err = fmt.Errorf("%w: nil picker", ErrOptionViolation)
			return
		}
		o.Picker = p
	}
}

// WithSeed is shorthand for WithPicker(NewRandPicker(seed)).
func WithSeed(seed int64) Option {
	return WithPicker(NewRandPicker(seed))
}

// WithMaxRooms sets the room ceiling. n must be positive.
func WithMaxRooms(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRooms must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRooms = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback run after every move.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result is the outcome of one exploration run.
type Result struct {
	RunID string

	// Start is the room the run began in.
	Start int

	// Path is every move made, exploring and backtracking, in order.
	Path []label.Label

	// Complete is false when the room ceiling stopped the run.
	Complete bool

	// Rooms is the number of distinct rooms discovered.
	Rooms int

	ExploreMoves   int // moves through a previously unknown exit
	BacktrackMoves int // moves along planned BFS paths
	Backtracks     int // number of BFS plans executed

	// Graph is the frontier graph as it stood when the run ended.
	Graph *frontier.Graph
}

// Moves returns len(r.Path).
func (r *Result) Moves() int { return len(r.Path) }
