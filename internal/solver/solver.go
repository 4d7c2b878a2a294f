// Package solver wires input parsing, the graph view and the search engines
// into the two puzzle pipelines, each producing a Part 1 and a Part 2 answer.
package solver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/chiton/dijkstra"
	"github.com/katalvlaran/chiton/enhance"
	"github.com/katalvlaran/chiton/gridgraph"
)

var (
	// ErrUnreachable indicates the bottom-right cell was never reached.
	ErrUnreachable = errors.New("solver: bottom-right cell is unreachable")
	// ErrBadSteps indicates a negative or decreasing step configuration.
	ErrBadSteps = errors.New("solver: step counts must be non-negative and non-decreasing")
)

// Answers holds the two numbers a puzzle run prints.
type Answers struct {
	Part1 int64
	Part2 int64
}

// RiskPaths loads a square risk map from r and returns the lowest total risk
// from the top-left to the bottom-right cell, for the map tiled with
// cfg.Part1Multiplier and then with cfg.Part2Multiplier. The top-left cell's
// own risk is not counted because the search starts inside it.
func RiskPaths(r io.Reader, cfg RiskConfig) (Answers, error) {
	log := cfg.Log
	if log == nil {
		log = discardLogger()
	}

	tg, err := gridgraph.Load(r, gridgraph.WithMultiplier(cfg.Part1Multiplier))
	if err != nil {
		return Answers{}, fmt.Errorf("loading risk map: %w", err)
	}
	log.WithField("size", tg.BaseSize()).Debug("risk map loaded")

	var ans Answers
	for i, m := range []int{cfg.Part1Multiplier, cfg.Part2Multiplier} {
		if err = tg.SetMultiplier(m); err != nil {
			return Answers{}, err
		}
		d, err := lowestRisk(tg, log)
		if err != nil {
			return Answers{}, fmt.Errorf("part %d: %w", i+1, err)
		}
		if i == 0 {
			ans.Part1 = d
		} else {
			ans.Part2 = d
		}
	}

	return ans, nil
}

// lowestRisk runs Dijkstra from the top-left cell to the last node of tg.
func lowestRisk(tg *gridgraph.TiledGrid, log logrus.FieldLogger) (int64, error) {
	target := tg.LastNodeID()
	start := time.Now()
	dist, _, err := dijkstra.Dijkstra(tg, dijkstra.Source(1), dijkstra.WithTarget(target))
	if err != nil {
		return 0, err
	}
	if dist[target] == dijkstra.Infinity {
		return 0, ErrUnreachable
	}

	log.WithFields(logrus.Fields{
		"multiplier": tg.Multiplier(),
		"nodes":      tg.NumNodes(),
		"risk":       dist[target],
		"elapsed":    time.Since(start),
	}).Debug("shortest path computed")

	return dist[target], nil
}

// Enhance parses a trench-map input from r and returns the number of lit
// pixels after cfg.Part1Steps and after cfg.Part2Steps enhancement steps.
// The second run continues from the first.
func Enhance(r io.Reader, cfg EnhanceConfig) (Answers, error) {
	log := cfg.Log
	if log == nil {
		log = discardLogger()
	}
	if cfg.Part1Steps < 0 || cfg.Part2Steps < cfg.Part1Steps {
		return Answers{}, fmt.Errorf("%w: %d then %d", ErrBadSteps, cfg.Part1Steps, cfg.Part2Steps)
	}

	s, err := enhance.Parse(r)
	if err != nil {
		return Answers{}, fmt.Errorf("loading trench map: %w", err)
	}
	log.WithFields(logrus.Fields{
		"width":  s.Width(),
		"height": s.Height(),
		"rule":   s.Rule().String(),
	}).Debug("trench map loaded")

	var ans Answers
	s = s.Run(cfg.Part1Steps)
	ans.Part1 = int64(s.Lit())
	log.WithFields(logrus.Fields{"steps": s.Steps(), "lit": ans.Part1}).Debug("enhanced")

	s = s.Run(cfg.Part2Steps - cfg.Part1Steps)
	ans.Part2 = int64(s.Lit())
	log.WithFields(logrus.Fields{"steps": s.Steps(), "lit": ans.Part2}).Debug("enhanced")

	return ans, nil
}
