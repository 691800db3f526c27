package world

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/roamer/label"
)

// roomGraph is the dictionary literal form of a map:
//
//	{0: [(3, 5), {'n': 1}], 1: [(3, 6), {'s': 0, 'n': 2}], 2: [(3, 7), {'s': 1}]}
//
// Each room id maps to its (x, y) position and its exits.
type roomGraph struct {
	Rooms []*roomEntry `"{" ( @@ ","? )* "}"`
}

type roomEntry struct {
	ID    int          `@Int ":" "["`
	X     int          `"(" @Int ","`
	Y     int          `@Int ")" ","`
	Exits []*exitEntry `"{" ( @@ ","? )* "}" ","? "]"`
}

type exitEntry struct {
	Dir string `@String ":"`
	To  int    `@Int`
}

var roomGraphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
	{Name: "Punct", Pattern: `[{}\[\](),:]`},
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseRoomGraph = participle.MustBuild[roomGraph](
	participle.Lexer(roomGraphLexer),
	participle.Elide("comment", "whitespace"),
)

// LoadRoomGraph decodes a map written as a dictionary literal of
// id: [(x, y), {direction: id}] entries. Exits are set one direction at a
// time as listed; the start is the lowest room id.
func LoadRoomGraph(r io.Reader) (*World, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "world: read room graph")
	}
	rg, err := parseRoomGraph.ParseBytes("", src)
	if err != nil {
		return nil, errors.Wrap(err, "world: parse room graph")
	}
	if len(rg.Rooms) == 0 {
		return nil, ErrEmptyWorld
	}

	w := New()
	for _, re := range rg.Rooms {
		if _, err := w.AddRoom(re.ID, re.X, re.Y); err != nil {
			return nil, err
		}
	}
	for _, re := range rg.Rooms {
		exits := make([]label.Label, 0, len(re.Exits))
		to := make(map[label.Label]int, len(re.Exits))
		for _, ex := range re.Exits {
			l, err := label.Parse(strings.Trim(ex.Dir, `'"`))
			if err != nil {
				return nil, errors.Wrapf(err, "world: room %d", re.ID)
			}
			exits = append(exits, l)
			to[l] = ex.To
		}
		label.Sort(exits)
		for _, l := range exits {
			if err := w.SetExit(re.ID, l, to[l]); err != nil {
				return nil, err
			}
		}
	}
	w.Start = w.Rooms()[0]
	return w, nil
}
