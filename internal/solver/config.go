package solver

import (
	"io"

	"github.com/sirupsen/logrus"
)

// RiskConfig configures RiskPaths.
type RiskConfig struct {
	// Part1Multiplier and Part2Multiplier are the tiling factors of the two runs.
	Part1Multiplier int
	Part2Multiplier int
	// Log receives phase tracing at debug level.
	Log logrus.FieldLogger
}

// DefaultRiskConfig returns the puzzle settings: the map as loaded, then tiled 5×5.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		Part1Multiplier: 1,
		Part2Multiplier: 5,
		Log:             discardLogger(),
	}
}

// EnhanceConfig configures Enhance.
type EnhanceConfig struct {
	// Part1Steps and Part2Steps are the total step counts after which lit
	// pixels are counted. Part2Steps must not be smaller than Part1Steps.
	Part1Steps int
	Part2Steps int
	// Log receives phase tracing at debug level.
	Log logrus.FieldLogger
}

// DefaultEnhanceConfig returns the puzzle settings: 2 steps, then 50.
func DefaultEnhanceConfig() EnhanceConfig {
	return EnhanceConfig{
		Part1Steps: 2,
		Part2Steps: 50,
		Log:        discardLogger(),
	}
}

// discardLogger is a logger that drops everything, used when none is configured.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
