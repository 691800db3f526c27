// Package label defines the exit alphabet shared by every roamer package:
// the four cardinal directions and their static inverse mapping.
//
// Labels order canonically as n, e, s, w. Every component that iterates
// over exits (frontier cells, BFS neighbor expansion, world rendering)
// uses that order, which keeps runs reproducible under a fixed seed.
package label

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLabel is returned by Parse for input outside the alphabet.
var ErrUnknownLabel = errors.New("label: unknown exit label")

// Label is one exit direction. The zero value is not a valid label.
type Label byte

const (
	North Label = iota + 1
	East
	South
	West
)

// all is the canonical iteration order.
var all = [...]Label{North, East, South, West}

// All returns the alphabet in canonical order. The slice is fresh on every call.
func All() []Label {
	out := make([]Label, len(all))
	copy(out, all[:])
	return out
}

// Valid reports whether l belongs to the alphabet.
func (l Label) Valid() bool {
	return l >= North && l <= West
}

// Inverse returns the label leading back along the same exit:
// n↔s, e↔w. An invalid label maps to itself.
func (l Label) Inverse() Label {
	switch l {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return l
}

// Offset returns the grid step (dx, dy) for l, with y growing northwards.
func (l Label) Offset() (dx, dy int) {
	switch l {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the single-letter form used in recorded paths.
func (l Label) String() string {
	switch l {
	case North:
		return "n"
	case East:
		return "e"
	case South:
		return "s"
	case West:
		return "w"
	}
	return fmt.Sprintf("Label(%d)", byte(l))
}

// Name returns the long form ("north", ...).
func (l Label) Name() string {
	switch l {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return l.String()
}

// Parse accepts the single-letter and the long form, case-insensitively.
func Parse(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// ParsePath parses a sequence of labels, e.g. the tokens of a saved path.
func ParsePath(tokens []string) ([]Label, error) {
	out := make([]Label, 0, len(tokens))
	for i, tok := range tokens {
		l, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("label: step %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// Strings renders a path in single-letter form.
func Strings(path []Label) []string {
	out := make([]string, len(path))
	for i, l := range path {
		out[i] = l.String()
	}
	return out
}

// Sort orders labels canonically in place.
func Sort(ls []Label) {
	// insertion sort; slices hold at most four labels
	for i := 1; i < len(ls); i++ {
		for j := i; j > 0 && ls[j] < ls[j-1]; j-- {
			ls[j], ls[j-1] = ls[j-1], ls[j]
		}
	}
}

// MarshalText implements encoding.TextMarshaler, so labels serialize as "n", "e", ...
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, byte(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
