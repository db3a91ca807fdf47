// Command amphipod prints the minimum energy needed to sort a burrow.
//
// Usage:
//
//	amphipod [--strategy dijkstra|relax] [--workers N] [--path] [--debug] solve ROOM ROOM ROOM ROOM
//	amphipod example
//
// Each ROOM lists its amphipods from the opening inward, e.g. "BA". A depth-2
// input is solved twice: as given and unfolded to depth 4. Flags fall back to
// AMPHIPOD_STRATEGY, AMPHIPOD_WORKERS and AMPHIPOD_DEBUG, which may also come
// from a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/search"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// exampleRooms is the published example arrangement.
var exampleRooms = []string{"BA", "CD", "BC", "DA"}

var errUsage = errors.New("expected exactly four rooms")

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env")
	}

	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("amphipod failed")
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "amphipod",
		Usage: "minimum energy to sort an amphipod burrow",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Value:   search.StrategyDijkstra.String(),
				Usage:   "search strategy: dijkstra or relax",
				Sources: cli.EnvVars("AMPHIPOD_STRATEGY"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   1,
				Usage:   "goroutines for the relax strategy",
				Sources: cli.EnvVars("AMPHIPOD_WORKERS"),
			},
			&cli.BoolFlag{
				Name:  "path",
				Usage: "print one cheapest move sequence",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log search statistics",
				Sources: cli.EnvVars("AMPHIPOD_DEBUG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "solve the given rooms",
				ArgsUsage: "ROOM ROOM ROOM ROOM",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 4 {
						return fmt.Errorf("%w, got %d", errUsage, cmd.NArg())
					}
					return run(cmd, out, cmd.Args().Slice())
				},
			},
			{
				Name:  "example",
				Usage: "solve the published example",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(cmd, out, exampleRooms)
				},
			},
		},
	}
}

// run parses rooms, solves every variant they describe and prints the results.
func run(cmd *cli.Command, out io.Writer, rooms []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	start, err := burrow.Parse(rooms...)
	if err != nil {
		return err
	}

	starts := []burrow.Burrow{start}
	if start.Depth() == burrow.ShallowDepth {
		deep, err := start.Unfold()
		if err != nil {
			return err
		}
		starts = append(starts, deep)
	}

	for _, b := range starts {
		res, err := search.Solve(b, opts...)
		if err != nil {
			return fmt.Errorf("depth %d: %w", b.Depth(), err)
		}
		fmt.Fprintf(out, "depth %d: %d\n", b.Depth(), res.Cost)
		for i, m := range res.Path {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, m)
		}
	}
	return nil
}

// options turns the command flags into search options.
func options(cmd *cli.Command) ([]search.Option, error) {
	strategy, err := search.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return nil, err
	}
	workers := int(cmd.Int("workers"))
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", search.ErrBadWorkers, workers)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cmd.Bool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts := []search.Option{
		search.WithStrategy(strategy),
		search.WithWorkers(workers),
		search.WithLogger(logger),
	}
	if cmd.Bool("path") {
		opts = append(opts, search.WithReturnPath())
	}
	return opts, nil
}
