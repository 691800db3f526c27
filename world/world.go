package world

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roamer/label"
)

// New returns an empty World.
func New() *World {
	return &World{rooms: make(map[int]*Room)}
}

// AddRoom inserts a room with no exits at (x, y). The first room added
// becomes the starting room.
func (w *World) AddRoom(id, x, y int) (*Room, error) {
	if _, ok := w.rooms[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrRoomExists, id)
	}
	r := &Room{
		ID:    id,
		X:     x,
		Y:     y,
		Title: fmt.Sprintf("Room %d", id),
		Exits: make(map[label.Label]int, 4),
	}
	if len(w.rooms) == 0 {
		w.Start = id
	}
	w.rooms[id] = r
	return r, nil
}

// Connect joins a and b: leaving a via l reaches b, leaving b via l.Inverse() reaches a.
// Reconnecting an existing identical exit is a no-op.
func (w *World) Connect(a int, l label.Label, b int) error {
	if err := w.checkExit(a, l, b); err != nil {
		return err
	}
	if err := w.checkExit(b, l.Inverse(), a); err != nil {
		return err
	}
	w.rooms[a].Exits[l] = b
	w.rooms[b].Exits[l.Inverse()] = a
	return nil
}

// SetExit writes a single direction a --l--> b without touching b.
// Maps built only through SetExit may fail Validate.
func (w *World) SetExit(a int, l label.Label, b int) error {
	if err := w.checkExit(a, l, b); err != nil {
		return err
	}
	w.rooms[a].Exits[l] = b
	return nil
}

// checkExit reports whether a --l--> b can be written.
func (w *World) checkExit(a int, l label.Label, b int) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", label.ErrUnknownLabel, byte(l))
	}
	ra, ok := w.rooms[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, a)
	}
	if _, ok := w.rooms[b]; !ok {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, b)
	}
	if a == b {
		return fmt.Errorf("%w: %d via %s", ErrLoopNotAllowed, a, l)
	}
	if cur, ok := ra.Exits[l]; ok && cur != b {
		return fmt.Errorf("%w: %d via %s leads to %d, not %d", ErrExitTaken, a, l, cur, b)
	}
	return nil
}

// Room returns the room with the given id.
func (w *World) Room(id int) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// HasRoom reports whether id exists.
func (w *World) HasRoom(id int) bool {
	_, ok := w.rooms[id]
	return ok
}

// Len returns the number of rooms.
func (w *World) Len() int { return len(w.rooms) }

// Rooms returns every room id in ascending order.
func (w *World) Rooms() []int {
	ids := make([]int, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Exits returns the exit labels of room id in canonical order.
func (w *World) Exits(id int) ([]label.Label, error) {
	r, ok := w.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, id)
	}
	return r.ExitLabels(), nil
}

// Neighbor returns the room reached from id via l.
func (w *World) Neighbor(id int, l label.Label) (int, bool) {
	r, ok := w.rooms[id]
	if !ok {
		return 0, false
	}
	to, ok := r.Exits[l]
	return to, ok
}

// Validate checks that the starting room exists, every exit leads to an
// existing room, and every exit is reciprocal.
func (w *World) Validate() error {
	if len(w.rooms) == 0 {
		return ErrEmptyWorld
	}
	if !w.HasRoom(w.Start) {
		return fmt.Errorf("%w: start %d", ErrRoomNotFound, w.Start)
	}
	for _, id := range w.Rooms() {
		r := w.rooms[id]
		for _, l := range r.ExitLabels() {
			to := r.Exits[l]
			back, ok := w.rooms[to]
			if !ok {
				return fmt.Errorf("%w: %d via %s leads to %d", ErrRoomNotFound, id, l, to)
			}
			if from, ok := back.Exits[l.Inverse()]; !ok || from != id {
				return fmt.Errorf("%w: %d via %s reaches %d, which has no %s exit back",
					ErrNotReciprocal, id, l, to, l.Inverse())
			}
		}
	}
	return nil
}

// Components finds the groups of rooms reachable from each other through exits.
// Each component lists its rooms in ascending order; components are ordered by
// their smallest room id.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (w *World) Components() [][]int {
	seen := make(map[int]bool, len(w.rooms))
	var comps [][]int

	for _, root := range w.Rooms() {
		if seen[root] {
			continue
		}
		// BFS to collect component
		queue := []int{root}
		seen[root] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, l := range w.rooms[u].ExitLabels() {
				v := w.rooms[u].Exits[l]
				if _, ok := w.rooms[v]; !ok || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}

// ComponentOf returns the rooms reachable from id, ascending, or nil if id is unknown.
func (w *World) ComponentOf(id int) []int {
	if !w.HasRoom(id) {
		return nil
	}
	for _, c := range w.Components() {
		i := sort.SearchInts(c, id)
		if i < len(c) && c[i] == id {
			return c
		}
	}
	return nil
}
