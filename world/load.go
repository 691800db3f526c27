package world

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roamer/label"
)

// mapFile is the on-disk form of a World.
//
//	start: 0
//	rooms:
//	  - id: 0
//	    x: 3
//	    y: 5
//	    title: Foyer
//	    exits: {n: 1, e: 2}
type mapFile struct {
	Start *int       `yaml:"start,omitempty"`
	Rooms []roomFile `yaml:"rooms"`
}

type roomFile struct {
	ID          int            `yaml:"id"`
	X           int            `yaml:"x"`
	Y           int            `yaml:"y"`
	Title       string         `yaml:"title,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Exits       map[string]int `yaml:"exits,omitempty"`
}

// Load decodes a map file. Exits are written one direction at a time, exactly
// as listed, so a malformed file loads and is caught by Validate instead.
// When start is omitted the lowest room id is used.
func Load(r io.Reader) (*World, error) {
	var mf mapFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyWorld
		}
		return nil, errors.Wrap(err, "world: decode map")
	}
	if len(mf.Rooms) == 0 {
		return nil, ErrEmptyWorld
	}

	w := New()
	for _, rf := range mf.Rooms {
		room, err := w.AddRoom(rf.ID, rf.X, rf.Y)
		if err != nil {
			return nil, err
		}
		if rf.Title != "" {
			room.Title = rf.Title
		}
		room.Description = rf.Description
	}
	for _, rf := range mf.Rooms {
		// sorted for deterministic error reporting
		keys := make([]string, 0, len(rf.Exits))
		for k := range rf.Exits {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			l, err := label.Parse(k)
			if err != nil {
				return nil, errors.Wrapf(err, "world: room %d", rf.ID)
			}
			if err := w.SetExit(rf.ID, l, rf.Exits[k]); err != nil {
				return nil, err
			}
		}
	}

	if mf.Start != nil {
		w.Start = *mf.Start
	} else {
		w.Start = w.Rooms()[0]
	}
	if !w.HasRoom(w.Start) {
		return nil, errors.Wrapf(ErrRoomNotFound, "world: start %d", w.Start)
	}
	return w, nil
}

// LoadFile reads a map file from disk. Files ending in .txt or .py hold a
// dictionary literal and go through LoadRoomGraph; everything else is YAML
// or JSON.
func LoadFile(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "world: open %s", path)
	}
	defer f.Close()

	load := Load
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".py":
		load = LoadRoomGraph
	}
	w, err := load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "world: load %s", path)
	}
	return w, nil
}

// Marshal encodes w in the map file format, rooms in ascending id order.
func Marshal(w *World) ([]byte, error) {
	start := w.Start
	mf := mapFile{Start: &start}
	for _, id := range w.Rooms() {
		r := w.rooms[id]
		rf := roomFile{
			ID:          r.ID,
			X:           r.X,
			Y:           r.Y,
			Title:       r.Title,
			Description: r.Description,
			Exits:       make(map[string]int, len(r.Exits)),
		}
		for l, to := range r.Exits {
			rf.Exits[l.String()] = to
		}
		mf.Rooms = append(mf.Rooms, rf)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&mf); err != nil {
		return nil, errors.Wrap(err, "world: encode map")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "world: encode map")
	}
	return buf.Bytes(), nil
}

// SaveFile writes w to path in the map file format.
func SaveFile(path string, w *World) error {
	b, err := Marshal(w)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "world: write %s", path)
}
