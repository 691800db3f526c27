package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roamer/label"
	"github.com/katalvlaran/roamer/world"
)

func mustRooms(t *testing.T, w *world.World, ids ...int) {
	t.Helper()
	for i, id := range ids {
		_, err := w.AddRoom(id, i, 0)
		require.NoError(t, err)
	}
}

func TestAddRoom(t *testing.T) {
	w := world.New()
	r, err := w.AddRoom(5, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Room 5", r.Title)
	assert.Equal(t, 5, w.Start, "first room becomes the start")

	_, err = w.AddRoom(5, 0, 0)
	require.ErrorIs(t, err, world.ErrRoomExists)

	_, err = w.AddRoom(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, w.Start)
	assert.Equal(t, []int{2, 5}, w.Rooms())
	assert.Equal(t, 2, w.Len())
}

// TestConnect_WritesBothDirections checks reciprocity and conflict handling.
func TestConnect_WritesBothDirections(t *testing.T) {
	w := world.New()
	mustRooms(t, w, 1, 2, 3)

	require.NoError(t, w.Connect(1, label.North, 2))
	to, ok := w.Neighbor(2, label.South)
	require.True(t, ok)
	assert.Equal(t, 1, to)
	require.NoError(t, w.Connect(1, label.North, 2), "identical exit is a no-op")

	require.ErrorIs(t, w.Connect(1, label.North, 3), world.ErrExitTaken)
	require.ErrorIs(t, w.Connect(3, label.North, 2), world.ErrExitTaken, "2's south is taken")
	require.ErrorIs(t, w.Connect(1, label.East, 1), world.ErrLoopNotAllowed)
	require.ErrorIs(t, w.Connect(1, label.East, 9), world.ErrRoomNotFound)
	require.ErrorIs(t, w.Connect(1, label.Label(0), 3), label.ErrUnknownLabel)

	// failed connects leave no half-written exit
	exits, err := w.Exits(3)
	require.NoError(t, err)
	assert.Empty(t, exits)
	require.NoError(t, w.Validate())
}

func TestExits(t *testing.T) {
	w := world.New()
	mustRooms(t, w, 0, 1, 2)
	require.NoError(t, w.Connect(0, label.West, 1))
	require.NoError(t, w.Connect(0, label.North, 2))

	exits, err := w.Exits(0)
	require.NoError(t, err)
	assert.Equal(t, []label.Label{label.North, label.West}, exits)

	_, err = w.Exits(42)
	require.ErrorIs(t, err, world.ErrRoomNotFound)
	_, ok := w.Neighbor(42, label.North)
	assert.False(t, ok)
}

// TestValidate covers each way a map can be malformed.
func TestValidate(t *testing.T) {
	require.ErrorIs(t, world.New().Validate(), world.ErrEmptyWorld)

	w := world.New()
	mustRooms(t, w, 0, 1, 2)
	require.NoError(t, w.SetExit(0, label.North, 1))
	require.ErrorIs(t, w.Validate(), world.ErrNotReciprocal)

	// 1's south leads to 2, not back to 0
	require.NoError(t, w.SetExit(1, label.South, 2))
	require.ErrorIs(t, w.Validate(), world.ErrNotReciprocal)

	w2 := world.New()
	mustRooms(t, w2, 0)
	w2.Start = 7
	require.ErrorIs(t, w2.Validate(), world.ErrRoomNotFound)
}

// TestComponents finds islands in ascending order.
func TestComponents(t *testing.T) {
	w := world.New()
	mustRooms(t, w, 0, 1, 2, 3, 4)
	require.NoError(t, w.Connect(0, label.East, 3))
	require.NoError(t, w.Connect(1, label.North, 4))

	assert.Equal(t, [][]int{{0, 3}, {1, 4}, {2}}, w.Components())
	assert.Equal(t, []int{1, 4}, w.ComponentOf(4))
	assert.Equal(t, []int{2}, w.ComponentOf(2))
	assert.Nil(t, w.ComponentOf(99))
}
