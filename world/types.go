package world

import (
	"errors"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/label"
)

// Sentinel errors for world construction and movement.
var (
	// ErrRoomNotFound indicates an operation referenced a room id that does not exist.
	ErrRoomNotFound = errors.New("world: room not found")

	// ErrRoomExists indicates AddRoom was called twice with the same id.
	ErrRoomExists = errors.New("world: room already exists")

	// ErrExitTaken indicates an exit slot already leads to a different room.
	ErrExitTaken = errors.New("world: exit already taken")

	// ErrLoopNotAllowed indicates an exit leading back into its own room.
	ErrLoopNotAllowed = errors.New("world: exit loops into its own room")

	// ErrInvalidMove indicates a move through an exit the current room does not have.
	ErrInvalidMove = explore.ErrInvalidMove

	// ErrNotReciprocal indicates an exit whose inverse does not lead back.
	ErrNotReciprocal = errors.New("world: exit is not reciprocal")

	// ErrTooFewRooms indicates a generator size parameter below its minimum.
	ErrTooFewRooms = errors.New("world: parameter too small")

	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("world: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("world: all grid rows must have the same length")

	// ErrEmptyWorld indicates a world without rooms where at least one is required.
	ErrEmptyWorld = errors.New("world: no rooms")
)

// Room is one vertex of the ground-truth map.
// X and Y place the room on a plane (y grows northwards); they are
// informational and play no part in movement.
type Room struct {
	ID          int
	X, Y        int
	Title       string
	Description string
	Exits       map[label.Label]int
}

// ExitLabels returns the room's exits in canonical order.
func (r *Room) ExitLabels() []label.Label {
	out := make([]label.Label, 0, len(r.Exits))
	for _, l := range label.All() {
		if _, ok := r.Exits[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// World is a complete map: every room and every exit, plus a starting room.
// It is not safe for concurrent mutation.
type World struct {
	Start int
	rooms map[int]*Room
}
