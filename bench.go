package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"shallowblue/engine"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed benchcases.yaml
var defaultSuite []byte

type benchSuite struct {
	Depths []int       `yaml:"depths"`
	Cases  []benchCase `yaml:"cases"`
}

type benchCase struct {
	Name string `yaml:"name"`
	FEN  string `yaml:"fen"`
}

// loadSuite reads a benchmark suite from path, or the embedded default
// when path is empty.
func loadSuite(path string) (*benchSuite, error) {
	data := defaultSuite
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("'%s': %v", path, err)
		}
	}
	var suite benchSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// runBenchmark times FindBestMove over every case of the suite. The clock
// starts once per case and every depth row reports the elapsed time since
// then, so durations accumulate across depths.
func runBenchmark(path string) error {
	suite, err := loadSuite(path)
	if err != nil {
		return err
	}
	fmt.Println("name\tdepth\tduration")
	for _, c := range suite.Cases {
		start := time.Now()
		opt, err := chess.FEN(c.FEN)
		if err != nil {
			log.Warn().Str("name", c.Name).Err(err).Msg("skipping case")
			continue
		}
		pos := chess.NewGame(opt).Position()
		for _, depth := range suite.Depths {
			engine.FindBestMove(pos, depth)
			fmt.Printf("%s\t%d\t%d\n", c.Name, depth, time.Since(start).Milliseconds())
		}
	}
	return nil
}
