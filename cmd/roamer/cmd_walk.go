package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/label"
	"github.com/katalvlaran/roamer/world"
)

// walkCmd lets a person walk a map by hand
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk a map interactively (n, e, s, w to move, q to quit)",
	Args:  cobra.NoArgs,
	RunE:  runWalk,
}

func runWalk(cmd *cobra.Command, args []string) error {
	w, err := loadMap()
	if err != nil {
		return err
	}
	p, err := world.NewPlayer(w)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := world.Describe(out, p.Room()); err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "-> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			break
		}
		fields := strings.Fields(strings.ToLower(in.Text()))
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "q" {
			break
		}
		l, err := label.Parse(fields[0])
		if err != nil {
			fmt.Fprintln(out, "I did not understand that command.")
			continue
		}
		if _, err := p.Move(l); err != nil {
			if errors.Is(err, explore.ErrInvalidMove) {
				fmt.Fprintln(out, "You cannot move in that direction.")
				continue
			}
			return err
		}
		if err := world.Describe(out, p.Room()); err != nil {
			return err
		}
	}
	logger.Debug("walk finished", zap.Int("moves", p.Moves()), zap.Int("room", p.Current()))
	return in.Err()
}
