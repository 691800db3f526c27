package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/label"
)

// pathRecord is the on-disk form of a recorded walk.
type pathRecord struct {
	RunID    string   `yaml:"run_id,omitempty"`
	Map      string   `yaml:"map,omitempty"`
	Seed     int64    `yaml:"seed,omitempty"`
	Start    *int     `yaml:"start,omitempty"`
	Complete bool     `yaml:"complete"`
	Rooms    int      `yaml:"rooms"`
	Path     []string `yaml:"path,flow"`
}

func pathFileFrom(res *explore.Result, mapFile string, seed int64) *pathRecord {
	start := res.Start
	return &pathRecord{
		RunID:    res.RunID,
		Map:      mapFile,
		Seed:     seed,
		Start:    &start,
		Complete: res.Complete,
		Rooms:    res.Rooms,
		Path:     label.Strings(res.Path),
	}
}

func (pf *pathRecord) labels() ([]label.Label, error) {
	return label.ParsePath(pf.Path)
}

func (pf *pathRecord) save(path string) error {
	b, err := yaml.Marshal(pf)
	if err != nil {
		return errors.Wrap(err, "encode path")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "write path %s", path)
}

func loadPathFile(path string) (*pathRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read path %s", path)
	}
	var pf pathRecord
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, errors.Wrapf(err, "parse path %s", path)
	}
	return &pf, nil
}
