// Command roamer explores a map it cannot see and checks that the recorded
// walk visits every room.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roamer/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Flags shared by subcommands, merged over the config file
	mapPath  string
	seed     int64
	maxRooms int
	outPath  string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roamer",
	Short: "roamer - explore unknown maps one move at a time",
	Long: `roamer walks a map whose rooms and exits are hidden from it, discovering
them through single moves. It prefers unexplored exits chosen at random and
backtracks along the shortest known route whenever it runs out of them, then
replays the recorded walk to confirm every room was visited.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = cfg.Logging.Build(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("map") {
		cfg.Map = mapPath
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("max-rooms") {
		cfg.MaxRooms = maxRooms
	}
	if flags.Changed("out") {
		cfg.Output = outPath
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "roamer.yaml", "Config file")
	rootCmd.PersistentFlags().StringVarP(&mapPath, "map", "m", "", "Map file (YAML or JSON)")

	exploreCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Random seed (0 = unseeded)")
	exploreCmd.Flags().IntVar(&maxRooms, "max-rooms", 0, "Room ceiling of the run")
	exploreCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the recorded path to this file")
	exploreCmd.Flags().IntVar(&runs, "runs", 1, "Explore this many times in parallel and keep the shortest walk")

	verifyCmd.Flags().StringVarP(&pathFile, "path", "p", "", "Recorded path file (required)")
	_ = verifyCmd.MarkFlagRequired("path")

	describeCmd.Flags().IntVarP(&describeRoom, "room", "r", -1, "Room id (default: every room)")

	generateCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Write the map to this file (default: stdout)")
	generateCmd.AddCommand(genLineCmd, genCrossCmd, genRingCmd, genGridCmd, genLollipopCmd)

	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(walkCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
