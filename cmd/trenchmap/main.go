// Command trenchmap prints the number of lit pixels after 2 and after 50
// enhancement steps of the trench map in input.txt (or the file named by the
// first argument).
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
		log.WithError(err).WithField("input", path).Fatal("trenchmap failed")
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

	cfg := solver.DefaultEnhanceConfig()
	cfg.Log = log
	return solver.Enhance(f, cfg)
}
