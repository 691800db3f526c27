package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roamer/world"
)

// generateCmd writes one of the built-in test maps
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a generated test map",
}

var genLineCmd = &cobra.Command{
	Use:   "line N",
	Short: "A corridor of N rooms",
	Args:  cobra.ExactArgs(1),
	RunE: generate(func(n []int) (*world.World, error) {
		return world.Line(n[0])
	}),
}

var genCrossCmd = &cobra.Command{
	Use:   "cross ARM",
	Short: "A centre room with four corridors of ARM rooms",
	Args:  cobra.ExactArgs(1),
	RunE: generate(func(n []int) (*world.World, error) {
		return world.Cross(n[0])
	}),
}

var genRingCmd = &cobra.Command{
	Use:   "ring ROWS COLS",
	Short: "The perimeter of a ROWS x COLS rectangle",
	Args:  cobra.ExactArgs(2),
	RunE: generate(func(n []int) (*world.World, error) {
		return world.Ring(n[0], n[1])
	}),
}

var genGridCmd = &cobra.Command{
	Use:   "grid ROWS COLS",
	Short: "A fully connected ROWS x COLS lattice",
	Args:  cobra.ExactArgs(2),
	RunE: generate(func(n []int) (*world.World, error) {
		return world.Grid(n[0], n[1])
	}),
}

var genLollipopCmd = &cobra.Command{
	Use:   "lollipop STEM ARM",
	Short: "A corridor of STEM rooms ending in two dead-end arms of ARM rooms",
	Args:  cobra.ExactArgs(2),
	RunE: generate(func(n []int) (*world.World, error) {
		return world.Lollipop(n[0], n[1])
	}),
}

// generate adapts a world constructor taking integer arguments to a RunE.
func generate(build func([]int) (*world.World, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		nums := make([]int, len(args))
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			nums[i] = v
		}
		w, err := build(nums)
		if err != nil {
			return err
		}

		if cfg.Output != "" {
			if err := world.SaveFile(cfg.Output, w); err != nil {
				return err
			}
			logger.Info("map written", zap.String("file", cfg.Output), zap.Int("rooms", w.Len()))
			return nil
		}
		b, err := world.Marshal(w)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}
}
