package frontier

import (
	"fmt"

	"github.com/katalvlaran/roamer/label"
)

// Graph is the two-level mapping room → label → Cell.
type Graph struct {
	cells    map[int]map[label.Label]Cell
	order    []int // rooms in discovery order
	resolved int   // number of resolved cells
	unknown  int   // number of unknown cells
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{cells: make(map[int]map[label.Label]Cell)}
}

// EnsureVertex registers room id with every label in labels set to Unknown.
// It reports whether the room was new. Calling it for a known room is a no-op
// and never touches already-resolved cells. Invalid and duplicate labels are ignored.
func (g *Graph) EnsureVertex(id int, labels []label.Label) bool {
	if _, ok := g.cells[id]; ok {
		return false
	}
	row := make(map[label.Label]Cell, len(labels))
	for _, l := range labels {
		if !l.Valid() {
			continue
		}
		if _, dup := row[l]; dup {
			continue
		}
		row[l] = Unknown()
		g.unknown++
	}
	g.cells[id] = row
	g.order = append(g.order, id)
	return true
}

// HasVertex reports whether id has been registered.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.cells[id]
	return ok
}

// Len returns the number of registered rooms.
func (g *Graph) Len() int { return len(g.order) }

// Vertices returns the registered rooms in discovery order.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

// Labels returns every exit label of id in canonical order, or nil for an unknown room.
func (g *Graph) Labels(id int) []label.Label {
	row, ok := g.cells[id]
	if !ok {
		return nil
	}
	out := make([]label.Label, 0, len(row))
	for _, l := range label.All() {
		if _, ok := row[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// UnknownLabels returns the labels at id that are still Unknown, in canonical order.
// An empty result means the room is fully resolved; nil is also returned for unregistered rooms.
func (g *Graph) UnknownLabels(id int) []label.Label {
	row, ok := g.cells[id]
	if !ok {
		return nil
	}
	var out []label.Label
	for _, l := range label.All() {
		if c, ok := row[l]; ok && !c.resolved {
			out = append(out, l)
		}
	}
	return out
}

// Cell returns the cell of id at l and whether it exists.
func (g *Graph) Cell(id int, l label.Label) (Cell, bool) {
	row, ok := g.cells[id]
	if !ok {
		return Cell{}, false
	}
	c, ok := row[l]
	return c, ok
}

// Neighbors returns the resolved cells of id in canonical label order.
func (g *Graph) Neighbors(id int) []Edge {
	row, ok := g.cells[id]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(row))
	for _, l := range label.All() {
		if c, ok := row[l]; ok && c.resolved {
			out = append(out, Edge{Label: l, To: c.to})
		}
	}
	return out
}

// Resolve records that leaving id via l reaches neighbor.
//
// Returns ErrVertexNotFound or ErrLabelNotFound for cells that do not exist,
// and an *InconsistencyError if the cell already resolves to another room.
// Resolving to the same neighbor again is a no-op.
func (g *Graph) Resolve(id int, l label.Label, neighbor int) error {
	row, ok := g.cells[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	c, ok := row[l]
	if !ok {
		return fmt.Errorf("%w: %d via %s", ErrLabelNotFound, id, l)
	}
	if c.resolved {
		if c.to != neighbor {
			return &InconsistencyError{Vertex: id, Label: l, Expected: c.to, Actual: neighbor}
		}
		return nil
	}
	row[l] = ResolvedTo(neighbor)
	g.resolved++
	g.unknown--
	return nil
}

// IsFullyExplored reports whether no registered room has an Unknown cell.
func (g *Graph) IsFullyExplored() bool { return g.unknown == 0 }

// ResolvedCount returns the number of resolved cells across all rooms.
func (g *Graph) ResolvedCount() int { return g.resolved }

// UnknownCount returns the number of Unknown cells across all rooms.
func (g *Graph) UnknownCount() int { return g.unknown }

// Snapshot returns a deep copy of the resolved cells: room → label → neighbor.
// Rooms without resolved cells map to an empty inner map.
func (g *Graph) Snapshot() map[int]map[label.Label]int {
	out := make(map[int]map[label.Label]int, len(g.cells))
	for id, row := range g.cells {
		inner := make(map[label.Label]int, len(row))
		for l, c := range row {
			if c.resolved {
				inner[l] = c.to
			}
		}
		out[id] = inner
	}
	return out
}
