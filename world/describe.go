package world

import (
	"fmt"
	"io"
	"strings"
)

// Describe writes a short human-readable description of room r:
// its title, description (if any) and exits.
func Describe(out io.Writer, r *Room) error {
	if r == nil {
		return ErrRoomNotFound
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d,%d)\n", r.Title, r.X, r.Y)
	if r.Description != "" {
		b.WriteString(r.Description)
		b.WriteByte('\n')
	}
	labels := r.ExitLabels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	if len(names) == 0 {
		b.WriteString("Exits: none\n")
	} else {
		fmt.Fprintf(&b, "Exits: [%s]\n", strings.Join(names, ", "))
	}
	_, err := io.WriteString(out, b.String())
	return err
}
