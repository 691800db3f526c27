package world

import (
	"fmt"

	"github.com/katalvlaran/roamer/label"
)

// LandThreshold is the minimum cell value FromGrid treats as a room.
const LandThreshold = 1

// FromGrid builds a world from a non-empty, rectangular 2D slice of cell values.
// Cells with value ≥ LandThreshold become rooms; orthogonally adjacent rooms
// are connected (4-connectivity). Row 0 is the northernmost row, so cell
// (col, row) lands at X=col, Y=height-1-row. Room ids are row-major indices
// (row·width + col); the start is the lowest id.
//
// Returns ErrEmptyGrid if grid has no rows or columns, ErrNonRectangular if
// row lengths differ, and ErrEmptyWorld if no cell is land.
// Complexity: O(W×H) time and memory.
func FromGrid(values [][]int) (*World, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, wd := len(values), len(values[0])
	for _, row := range values {
		if len(row) != wd {
			return nil, ErrNonRectangular
		}
	}
	land := func(col, row int) bool {
		return col >= 0 && col < wd && row >= 0 && row < h && values[row][col] >= LandThreshold
	}
	index := func(col, row int) int { return row*wd + col }

	w := New()
	for row := 0; row < h; row++ {
		for col := 0; col < wd; col++ {
			if !land(col, row) {
				continue
			}
			if _, err := w.AddRoom(index(col, row), col, h-1-row); err != nil {
				return nil, err
			}
		}
	}
	if w.Len() == 0 {
		return nil, ErrEmptyWorld
	}
	// each pair once: east and south neighbors only
	for row := 0; row < h; row++ {
		for col := 0; col < wd; col++ {
			if !land(col, row) {
				continue
			}
			if land(col+1, row) {
				if err := w.Connect(index(col, row), label.East, index(col+1, row)); err != nil {
					return nil, fmt.Errorf("FromGrid: %w", err)
				}
			}
			if land(col, row+1) {
				if err := w.Connect(index(col, row), label.South, index(col, row+1)); err != nil {
					return nil, fmt.Errorf("FromGrid: %w", err)
				}
			}
		}
	}
	w.Start = w.Rooms()[0]
	return w, nil
}
