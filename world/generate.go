// SPDX-License-Identifier: MIT
// Package: roamer/world
//
// generate.go - deterministic constructors for the classic test maps.
//
// Contract:
//   - Size parameters below their minimum fail with ErrTooFewRooms.
//   - Room ids are assigned densely from 0 in a fixed order; room 0 is the start.
//   - Every exit is written through Connect, so generated worlds are reciprocal.
//
// Determinism:
//   - Same parameters ⇒ identical worlds (ids, coordinates, exits).

package world

import (
	"fmt"

	"github.com/katalvlaran/roamer/label"
)

// File-local method tags and parameter minima.
const (
	methodLine     = "Line"
	methodCross    = "Cross"
	methodRing     = "Ring"
	methodGrid     = "Grid"
	methodLollipop = "Lollipop"
	methodJoin     = "Join"

	minLineRooms = 1
	minArm       = 1
	minRingSide  = 2
	minGridSide  = 1
	minStem      = 1
)

// Line returns n rooms in a north-running corridor: 0 ─n→ 1 ─n→ … ─n→ n-1.
func Line(n int) (*World, error) {
	if n < minLineRooms {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineRooms, ErrTooFewRooms)
	}
	w := New()
	for i := 0; i < n; i++ {
		if _, err := w.AddRoom(i, 0, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLine, err)
		}
	}
	for i := 1; i < n; i++ {
		if err := w.Connect(i-1, label.North, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLine, err)
		}
	}
	return w, nil
}

// Cross returns a centre room 0 with four corridors of arm rooms each,
// one per direction in canonical order (n, e, s, w).
func Cross(arm int) (*World, error) {
	if arm < minArm {
		return nil, fmt.Errorf("%s: arm=%d < min=%d: %w", methodCross, arm, minArm, ErrTooFewRooms)
	}
	w := New()
	if _, err := w.AddRoom(0, 0, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCross, err)
	}
	id := 1
	for _, l := range label.All() {
		dx, dy := l.Offset()
		prev := 0
		for i := 1; i <= arm; i++ {
			if _, err := w.AddRoom(id, dx*i, dy*i); err != nil {
				return nil, fmt.Errorf("%s: %w", methodCross, err)
			}
			if err := w.Connect(prev, l, id); err != nil {
				return nil, fmt.Errorf("%s: %w", methodCross, err)
			}
			prev = id
			id++
		}
	}
	return w, nil
}

// Ring returns the perimeter of a rows×cols rectangle as a single cycle of
// 2·(rows+cols)-4 rooms, numbered counter-clockwise from the south-west corner.
func Ring(rows, cols int) (*World, error) {
	if rows < minRingSide || cols < minRingSide {
		return nil, fmt.Errorf("%s: %dx%d < min=%d: %w", methodRing, rows, cols, minRingSide, ErrTooFewRooms)
	}
	var pts [][2]int
	for x := 0; x < cols; x++ {
		pts = append(pts, [2]int{x, 0})
	}
	for y := 1; y < rows; y++ {
		pts = append(pts, [2]int{cols - 1, y})
	}
	for x := cols - 2; x >= 0; x-- {
		pts = append(pts, [2]int{x, rows - 1})
	}
	for y := rows - 2; y >= 1; y-- {
		pts = append(pts, [2]int{0, y})
	}

	w := New()
	for i, p := range pts {
		if _, err := w.AddRoom(i, p[0], p[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRing, err)
		}
	}
	for i := range pts {
		j := (i + 1) % len(pts)
		l, ok := labelFor(pts[j][0]-pts[i][0], pts[j][1]-pts[i][1])
		if !ok {
			return nil, fmt.Errorf("%s: rooms %d and %d are not adjacent", methodRing, i, j)
		}
		if err := w.Connect(i, l, j); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRing, err)
		}
	}
	return w, nil
}

// Grid returns a fully connected rows×cols lattice. Room (x, y) has id y·cols + x.
func Grid(rows, cols int) (*World, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewRooms)
	}
	w := New()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if _, err := w.AddRoom(y*cols+x, x, y); err != nil {
				return nil, fmt.Errorf("%s: %w", methodGrid, err)
			}
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			id := y*cols + x
			if x+1 < cols {
				if err := w.Connect(id, label.East, id+1); err != nil {
					return nil, fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
			if y+1 < rows {
				if err := w.Connect(id, label.North, id+cols); err != nil {
					return nil, fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}
	}
	return w, nil
}

// Lollipop returns a corridor of stem rooms running north from room 0 into a
// junction room (id stem), which branches into an east and a west dead-end arm
// of arm rooms each. Total rooms: stem + 1 + 2·arm.
//
//	w2 w1 J e1 e2
//	      |
//	      s1
//	      |
//	      0
func Lollipop(stem, arm int) (*World, error) {
	if stem < minStem || arm < minArm {
		return nil, fmt.Errorf("%s: stem=%d (min %d) arm=%d (min %d): %w",
			methodLollipop, stem, minStem, arm, minArm, ErrTooFewRooms)
	}
	w, err := Line(stem + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLollipop, err)
	}
	junction := stem
	id := stem + 1
	for _, l := range []label.Label{label.East, label.West} {
		dx, _ := l.Offset()
		prev := junction
		for i := 1; i <= arm; i++ {
			if _, err := w.AddRoom(id, dx*i, stem); err != nil {
				return nil, fmt.Errorf("%s: %w", methodLollipop, err)
			}
			if err := w.Connect(prev, l, id); err != nil {
				return nil, fmt.Errorf("%s: %w", methodLollipop, err)
			}
			prev = id
			id++
		}
	}
	return w, nil
}

// Join returns a new world holding a and b side by side with no exit between
// them. Rooms of a keep their ids; rooms of b are renumbered after a's largest
// id and shifted east so the two never overlap. The start room is a's.
func Join(a, b *World) (*World, error) {
	if a == nil || b == nil || a.Len() == 0 || b.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodJoin, ErrEmptyWorld)
	}
	aIDs, bIDs := a.Rooms(), b.Rooms()
	idShift := aIDs[len(aIDs)-1] + 1 - bIDs[0]

	maxX, minX := 0, 0
	for i, id := range aIDs {
		if r := a.rooms[id]; i == 0 || r.X > maxX {
			maxX = r.X
		}
	}
	for i, id := range bIDs {
		if r := b.rooms[id]; i == 0 || r.X < minX {
			minX = r.X
		}
	}
	xShift := maxX + 2 - minX

	w := New()
	copyRooms := func(src *World, ids []int, dID, dX int) error {
		for _, id := range ids {
			r := src.rooms[id]
			nr, err := w.AddRoom(id+dID, r.X+dX, r.Y)
			if err != nil {
				return err
			}
			nr.Title, nr.Description = r.Title, r.Description
			for l, to := range r.Exits {
				nr.Exits[l] = to + dID
			}
		}
		return nil
	}
	if err := copyRooms(a, aIDs, 0, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoin, err)
	}
	if err := copyRooms(b, bIDs, idShift, xShift); err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoin, err)
	}
	w.Start = a.Start
	return w, nil
}

// labelFor maps a unit grid step to its label.
func labelFor(dx, dy int) (label.Label, bool) {
	for _, l := range label.All() {
		if x, y := l.Offset(); x == dx && y == dy {
			return l, true
		}
	}
	return 0, false
}
