// Command burrow reads a burrow diagram and prints the minimal total cost of
// moving every piece into its own room.
//
//	burrow -input day23.txt
//	burrow -input day23.txt -unfold DCBA,DBAC -path
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/search"
)

// Config holds the command-line settings.
type Config struct {
	Input         string
	Unfold        string
	CostBase      int64
	Path          bool
	NoPrune       bool
	Verbose       bool
	ProgressEvery int
}

var (
	errBadBase     = errors.New("-base must be at least 1")
	errBadProgress = errors.New("-progress must not be negative")
)

func main() {
	var config Config

	flag.StringVar(&config.Input, "input", "", "diagram `file` (default stdin)")
	flag.StringVar(&config.Unfold, "unfold", "", "comma-separated room `rows` to insert below the top row, e.g. DCBA,DBAC")
	flag.Int64Var(&config.CostBase, "base", burrow.DefaultCostBase, "per-kind cost base")
	flag.BoolVar(&config.Path, "path", false, "print every state on the optimal path")
	flag.BoolVar(&config.NoPrune, "no-prune", false, "expand every legal move")
	flag.BoolVar(&config.Verbose, "v", false, "debug logging")
	flag.IntVar(&config.ProgressEvery, "progress", 100000, "log progress every `n` expansions with -v")

	flag.Parse()

	log := logrus.StandardLogger()
	if config.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(&config, log, os.Stdout); err != nil {
		log.WithError(err).Fatal("burrow failed")
	}
}

func run(config *Config, log *logrus.Logger, out io.Writer) error {
	if config.CostBase < 1 {
		return errBadBase
	}
	if config.ProgressEvery < 0 {
		return errBadProgress
	}

	var in io.Reader = os.Stdin
	if config.Input != "" {
		f, err := os.Open(config.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	cols, err := diagram.Parse(in)
	if err != nil {
		return err
	}

	if config.Unfold != "" {
		var rows [][]burrow.Piece
		for _, s := range strings.Split(config.Unfold, ",") {
			row, err := diagram.ParseRow(s)
			if err != nil {
				return fmt.Errorf("unfold row %q: %w", s, err)
			}
			rows = append(rows, row)
		}
		if cols, err = diagram.Insert(cols, rows...); err != nil {
			return err
		}
	}

	problem, err := burrow.NewProblem(cols, burrow.WithCostBase(config.CostBase))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rooms":    problem.Params.NumRooms,
		"roomSize": problem.Params.RoomSize,
	}).Debug("parsed diagram")

	opts := []search.Option{
		search.WithLogger(log),
		search.WithProgressEvery(config.ProgressEvery),
	}
	if config.Path {
		opts = append(opts, search.WithReturnPath())
	}
	if config.NoPrune {
		opts = append(opts, search.WithoutPruning())
	}

	res, err := search.Solve(problem.Params, problem.Start, opts...)
	if err != nil {
		return err
	}

	for i, s := range res.Path {
		fmt.Fprintf(out, "step %d:\n%s\n\n", i, s.Render(problem.Params))
	}
	fmt.Fprintln(out, res.Cost)

	return nil
}
