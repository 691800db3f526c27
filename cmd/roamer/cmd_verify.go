package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roamer/verify"
)

var pathFile string

// verifyCmd replays a saved path against a map
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay a recorded path against a map",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	pf, err := loadPathFile(pathFile)
	if err != nil {
		return err
	}
	if cfg.Map == "" {
		cfg.Map = pf.Map
	}
	w, err := loadMap()
	if err != nil {
		return err
	}
	start := w.Start
	if pf.Start != nil {
		start = *pf.Start
	}
	path, err := pf.labels()
	if err != nil {
		return err
	}

	logger.Debug("replaying path", zap.String("file", pathFile), zap.Int("moves", len(path)), zap.Int("start", start))
	rep, err := verify.Coverage(start, path, w)
	if err != nil {
		return err
	}
	printReport(cmd, rep)
	return rep.Err()
}
