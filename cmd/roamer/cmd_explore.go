package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/verify"
	"github.com/katalvlaran/roamer/world"
)

var runs int

// exploreCmd explores a map and verifies the recorded walk
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore a map and verify the recorded walk",
	Args:  cobra.NoArgs,
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	w, err := loadMap()
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("--runs must be positive, got %d", runs)
	}

	res, runSeed, err := bestRun(cmd.Context(), w, runs)
	if err != nil {
		return err
	}

	rep, err := verify.Coverage(w.Start, res.Path, w)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		pf := pathFileFrom(res, cfg.Map, runSeed)
		if err := pf.save(cfg.Output); err != nil {
			return err
		}
		logger.Info("path written", zap.String("file", cfg.Output), zap.Int("moves", len(res.Path)))
	}

	out := cmd.OutOrStdout()
	if !res.Complete {
		fmt.Fprintf(out, "room ceiling of %d reached before exploration finished\n", cfg.MaxRooms)
	}
	printReport(cmd, rep)
	return rep.Err()
}

// seedFor returns the seed of run i: consecutive seeds from cfg.Seed, or 0
// (unseeded) for every run when cfg.Seed is 0.
func seedFor(i int) int64 {
	if cfg.Seed == 0 {
		return 0
	}
	return cfg.Seed + int64(i)
}

// bestRun explores w n times in parallel, each run with its own player and
// seed, and keeps the shortest complete walk. Ties go to the lower run index.
// An incomplete walk is returned only when no run completed.
func bestRun(ctx context.Context, w *world.World, n int) (*explore.Result, int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]*explore.Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			p, err := world.NewPlayer(w)
			if err != nil {
				return err
			}
			picker := explore.NewUnseededPicker()
			if s := seedFor(i); s != 0 {
				picker = explore.NewRandPicker(s)
			}
			res, err := explore.Explore(p,
				explore.WithPicker(picker),
				explore.WithMaxRooms(cfg.MaxRooms),
				explore.WithLogger(logger.With(zap.Int("run", i))),
				explore.WithContext(gctx),
			)
			if err != nil && !errors.Is(err, explore.ErrIncomplete) {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	best := 0
	for i := 1; i < n; i++ {
		if shorter(results[i], results[best]) {
			best = i
		}
	}
	if n > 1 {
		logger.Info("best run selected",
			zap.Int("run", best),
			zap.Int64("seed", seedFor(best)),
			zap.Int("moves", len(results[best].Path)),
			zap.Bool("complete", results[best].Complete))
	}
	return results[best], seedFor(best), nil
}

// shorter orders results: complete before incomplete, then fewer moves.
func shorter(a, b *explore.Result) bool {
	if a.Complete != b.Complete {
		return a.Complete
	}
	return len(a.Path) < len(b.Path)
}

// loadMap reads cfg.Map and warns about non-reciprocal exits.
func loadMap() (*world.World, error) {
	if cfg.Map == "" {
		return nil, errors.New("no map given: use --map or set map in the config file")
	}
	w, err := world.LoadFile(cfg.Map)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		logger.Warn("map failed validation", zap.String("map", cfg.Map), zap.Error(err))
	}
	logger.Debug("map loaded", zap.String("map", cfg.Map), zap.Int("rooms", w.Len()), zap.Int("start", w.Start))
	return w, nil
}

func printReport(cmd *cobra.Command, rep *verify.Report) {
	out := cmd.OutOrStdout()
	if rep.OK {
		fmt.Fprintf(out, "TESTS PASSED: %d moves, %d rooms visited\n", rep.Moves, rep.Visited)
		return
	}
	fmt.Fprintln(out, "TESTS FAILED: INCOMPLETE TRAVERSAL")
	fmt.Fprintf(out, "%d unvisited rooms\n", len(rep.Unvisited))
}
