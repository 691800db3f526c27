package world

import (
	"fmt"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/label"
)

var _ explore.Oracle = (*Player)(nil)

// Player walks a World one exit at a time. It satisfies explore.Oracle.
type Player struct {
	world   *World
	current int
	moves   int
}

// NewPlayer places a player in the world's starting room.
func NewPlayer(w *World) (*Player, error) {
	if w == nil || w.Len() == 0 {
		return nil, ErrEmptyWorld
	}
	if !w.HasRoom(w.Start) {
		return nil, fmt.Errorf("%w: start %d", ErrRoomNotFound, w.Start)
	}
	return &Player{world: w, current: w.Start}, nil
}

// Current returns the id of the room the player stands in.
func (p *Player) Current() int { return p.current }

// Room returns the room the player stands in.
func (p *Player) Room() *Room {
	r, _ := p.world.Room(p.current)
	return r
}

// Exits returns the real exits of room id.
func (p *Player) Exits(id int) ([]label.Label, error) {
	return p.world.Exits(id)
}

// Move travels through exit l of the current room and returns the new room id.
// A label the current room does not have fails with ErrInvalidMove and leaves
// the player where it was.
func (p *Player) Move(l label.Label) (int, error) {
	to, ok := p.world.Neighbor(p.current, l)
	if !ok {
		return p.current, fmt.Errorf("%w: room %d has no %s exit", ErrInvalidMove, p.current, l)
	}
	if !p.world.HasRoom(to) {
		return p.current, fmt.Errorf("%w: %d via %s leads to %d", ErrRoomNotFound, p.current, l, to)
	}
	p.current = to
	p.moves++
	return to, nil
}

// Moves returns the number of successful moves since creation or the last Reset.
func (p *Player) Moves() int { return p.moves }

// Reset puts the player back in the starting room.
func (p *Player) Reset() {
	p.current = p.world.Start
	p.moves = 0
}
