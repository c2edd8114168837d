// Command perft runs the perft leaf-count benchmark against a position
// given on the command line, or against a suite of positions described by a
// TOML config file.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/corvid-chess/chesscore/internal/clog"
	"github.com/corvid-chess/chesscore/perft"
	"github.com/corvid-chess/chesscore/position"
)

var log = clog.Get()

// Suite is a perft regression suite: a list of FENs, each paired with the
// known node count at each listed depth, loaded from a TOML config file via
// -suite.
type Suite struct {
	Position []SuitePosition `toml:"position"`
}

// SuitePosition is one FEN under test in a Suite.
type SuitePosition struct {
	Name   string   `toml:"name"`
	FEN    string   `toml:"fen"`
	Depths []uint64 `toml:"depths"` // depths[i] is the expected count for depth i+1.
}

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print the per-root-move perft breakdown")
	suitePath := flag.String("suite", "", "path to a TOML perft regression suite; overrides -fen/-depth")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	cpuprofile := flag.Bool("cpuprofile", false, "profile CPU usage for this run")

	flag.Parse()

	if *verbose {
		clog.SetLevel(logging.DEBUG)
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *suitePath != "" {
		if err := runSuite(*suitePath); err != nil {
			log.Fatalf("suite run failed: %v", err)
		}
		return
	}

	p, err := position.FromFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	if *divide {
		runDivide(p, *depth)
		return
	}

	start := time.Now()
	nodes := perft.Count(p, *depth)
	elapsed := time.Since(start)

	log.Infof("depth %d: %d nodes in %s (%.0f nodes/sec)",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
	fmt.Println(nodes)
}

func runDivide(p position.Position, depth int) {
	breakdown := perft.Divide(p, depth)
	var total uint64
	for move, count := range breakdown {
		fmt.Printf("%s: %d\n", move, count)
		total += count
	}
	fmt.Printf("\ntotal: %d\n", total)
}

// runSuite loads a TOML regression suite and runs its positions
// concurrently, each position's depths one after another. A position stops
// at its first depth whose node count disagrees with the suite's recorded
// expectation, and runSuite returns the first such error.
func runSuite(path string) error {
	var suite Suite
	if _, err := toml.DecodeFile(path, &suite); err != nil {
		return fmt.Errorf("decoding suite %q: %w", path, err)
	}

	var g errgroup.Group
	for _, sp := range suite.Position {
		sp := sp
		g.Go(func() error {
			return runSuitePosition(sp)
		})
	}
	return g.Wait()
}

func runSuitePosition(sp SuitePosition) error {
	p, err := position.FromFEN(sp.FEN)
	if err != nil {
		return fmt.Errorf("suite position %q: invalid FEN %q: %w", sp.Name, sp.FEN, err)
	}

	for i, want := range sp.Depths {
		depth := i + 1
		got := perft.Count(p, depth)
		if got != want {
			return fmt.Errorf("suite position %q depth %d: got %d nodes, want %d", sp.Name, depth, got, want)
		}
		log.Debugf("suite position %q depth %d: %d nodes, matches expectation", sp.Name, depth, got)
	}
	return nil
}
