package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/sirupsen/logrus"
)

// Solve returns the minimum total energy needed to turn start into the solved
// arrangement of the same depth.
//
// Preconditions and validation (in order):
//  1. start must pass burrow.Validate (ErrInvalidBurrow).
//  2. the solved arrangement must be reachable within MaxCost (ErrUnsolvable).
//
// A start that is already solved costs 0.
func Solve(start burrow.Burrow, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := start.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidBurrow, err)
	}
	target, err := burrow.Solved(start.Depth())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidBurrow, err)
	}

	log := cfg.Logger.WithFields(logrus.Fields{
		"strategy": cfg.Strategy.String(),
		"depth":    start.Depth(),
		"workers":  cfg.Workers,
	})
	log.Debug("search started")
	began := time.Now()

	var res Result
	switch cfg.Strategy {
	case StrategyRelax:
		res, err = solveRelax(cfg, start, target)
	default:
		res, err = solveDijkstra(cfg, start, target)
	}

	log = log.WithFields(logrus.Fields{
		"expanded": res.Expanded,
		"visited":  res.Visited,
		"elapsed":  time.Since(began),
	})
	if err != nil {
		log.WithError(err).Debug("search failed")
		return res, err
	}
	log.WithField("cost", res.Cost).Debug("search finished")

	return res, nil
}

func solveDijkstra(cfg Options, start, target burrow.Burrow) (Result, error) {
	r := newDijkstraRunner(cfg, target)
	found, err := r.solve(start)
	res := Result{Expanded: r.expanded, Visited: len(r.dist)}
	if err != nil {
		return res, err
	}
	if !found {
		return res, ErrUnsolvable
	}
	res.Cost = r.dist[target]
	if cfg.ReturnPath {
		res.Path = r.path()
	}

	return res, nil
}

func solveRelax(cfg Options, start, target burrow.Burrow) (Result, error) {
	r := &relaxRunner{options: cfg, memo: NewMemo(), target: target}
	err := r.solve(start)
	res := Result{Expanded: int(r.expanded.Load()), Visited: r.memo.Len()}
	if err != nil {
		return res, err
	}
	cost, ok := r.memo.Best(target)
	if !ok {
		return res, ErrUnsolvable
	}
	res.Cost = cost
	if cfg.ReturnPath {
		if res.Path, err = r.memo.PathTo(target); err != nil {
			return res, err
		}
	}

	return res, nil
}

// SolveBoth solves a depth-2 start as given and again after Unfold, returning
// the minimum energy of each variant.
func SolveBoth(start burrow.Burrow, opts ...Option) (shallow, deep Result, err error) {
	deepStart, err := start.Unfold()
	if err != nil {
		return Result{}, Result{}, fmt.Errorf("%w: %w", ErrInvalidBurrow, err)
	}
	if shallow, err = Solve(start, opts...); err != nil {
		return shallow, Result{}, err
	}
	if deep, err = Solve(deepStart, opts...); err != nil {
		return shallow, deep, err
	}

	return shallow, deep, nil
}
