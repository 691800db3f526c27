package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roamer/world"
)

var describeRoom int

// describeCmd prints room descriptions
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the description of one room or every room of a map",
	Args:  cobra.NoArgs,
	RunE:  runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	w, err := loadMap()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if describeRoom >= 0 {
		r, ok := w.Room(describeRoom)
		if !ok {
			return fmt.Errorf("%w: %d", world.ErrRoomNotFound, describeRoom)
		}
		return world.Describe(out, r)
	}
	for i, id := range w.Rooms() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		r, _ := w.Room(id)
		if err := world.Describe(out, r); err != nil {
			return err
		}
	}
	return nil
}
