// Command chiton prints the lowest total risk across the risk map in
// input.txt (or the file named by the first argument), first as loaded and
// then tiled 5×5.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/chiton/internal/solver"
)

var log = logrus.New()

func main() {
	path := "input.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ans, err := run(path)
	if err != nil {
		log.WithError(err).WithField("input", path).Fatal("chiton failed")
	}
	fmt.Printf("Part 1: %d\n", ans.Part1)
	fmt.Printf("Part 2: %d\n", ans.Part2)
}

func run(path string) (solver.Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return solver.Answers{}, err
	}
	defer f.Close()

	cfg := solver.DefaultRiskConfig()
	cfg.Log = log
	return solver.RiskPaths(f, cfg)
}
