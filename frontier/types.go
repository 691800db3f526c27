package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roamer/label"
)

// Sentinel errors for frontier operations.
var (
	// ErrVertexNotFound indicates an operation referenced a room that was never registered.
	ErrVertexNotFound = errors.New("frontier: vertex not found")

	// ErrLabelNotFound indicates the label is not an exit of the room.
	ErrLabelNotFound = errors.New("frontier: label is not an exit of vertex")

	// ErrInconsistency indicates a cell was about to be resolved to a room
	// other than the one it already resolves to.
	ErrInconsistency = errors.New("frontier: inconsistent resolution")
)

// InconsistencyError reports a conflicting resolution of one cell.
type InconsistencyError struct {
	Vertex   int         // room owning the cell
	Label    label.Label // exit label of the cell
	Expected int         // neighbor the cell already resolves to
	Actual   int         // neighbor the caller tried to record
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("frontier: inconsistent resolution at vertex %d via %s: resolved to %d, got %d",
		e.Vertex, e.Label, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrInconsistency) hold for every *InconsistencyError.
func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistency
}

// Cell is the state of one exit: Unknown, or resolved to a neighbor room.
type Cell struct {
	resolved bool
	to       int
}

// Unknown returns an unresolved cell.
func Unknown() Cell { return Cell{} }

// ResolvedTo returns a cell resolved to room id.
func ResolvedTo(id int) Cell { return Cell{resolved: true, to: id} }

// Resolved reports whether the cell leads to a known room.
func (c Cell) Resolved() bool { return c.resolved }

// To returns the neighbor id and true for a resolved cell, or (0, false).
func (c Cell) To() (int, bool) {
	if !c.resolved {
		return 0, false
	}
	return c.to, true
}

func (c Cell) String() string {
	if !c.resolved {
		return "?"
	}
	return fmt.Sprintf("%d", c.to)
}

// Edge is one resolved cell seen from its owning room.
type Edge struct {
	Label label.Label
	To    int
}
