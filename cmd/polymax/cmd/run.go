package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/polymax/polymax/instance"
	"github.com/polymax/polymax/solve"
)

// run reads basename.instance, solves it under p, writes
// basename.<ext>.solution, and prints multirun progress the way the
// source's manyruns does. Every early exit here becomes a RunE error,
// which Execute turns into a message-and-exit (spec.md §7).
func run(c *cobra.Command, p params, basename string) error {
	points, idOf, err := instance.ReadFile(basename + ".instance")
	if err != nil {
		return fmt.Errorf("reading %s.instance: %w", basename, err)
	}

	n := len(points)
	if n > p.nmax {
		return fmt.Errorf("file is too large: %d points (nmax=%d)", n, p.nmax)
	}
	if n < p.nmin {
		return fmt.Errorf("file is too small: %d points (nmin=%d)", n, p.nmin)
	}

	kappa, err := parseHood(p.hood)
	if err != nil {
		return err
	}

	opts := solve.DefaultOptions()
	opts.Maximize = p.maximize
	opts.EnableLocalSearch = p.opt
	opts.MultiRun = p.multirun
	opts.Timeout = time.Duration(p.timeout * float64(time.Second))
	opts.NMin = p.nmin
	opts.NMax = p.nmax
	opts.Greedy.Alpha = p.pen
	opts.Greedy.Sigma = p.sigma
	opts.Greedy.Kappa = kappa
	opts.Greedy.Seed = p.seed
	opts.LocalSearch.Hops = p.hops

	start := time.Now()
	c.Printf("\n---------- %s started\n", basename)

	result, err := solve.Solve(points, opts)
	if err != nil {
		return fmt.Errorf("no solution found: %w", err)
	}

	var winner solve.AttemptStats
	for _, a := range result.Attempts {
		if !a.Accepted {
			continue
		}
		c.Printf("%d sec, %v => %v\n", int(a.Elapsed.Seconds()), a.ScoreBefore, a.ScoreAfter)
		winner = a
	}

	header := instance.Header{
		Maximize:      p.maximize,
		Pen:           p.pen,
		Sigma:         p.sigma,
		Hood:          instanceHood(kappa),
		Opt:           p.opt,
		Hops:          p.hops,
		Score:         result.Score,
		Elapsed:       time.Since(start),
		Args:          os.Args[1:],
		PreOptScore:   winner.ScoreBefore,
		PreOptElapsed: winner.Elapsed,
	}

	path, err := instance.WriteFile(basename, result.Poly, idOf, header)
	if err != nil {
		return fmt.Errorf("writing solution: %w", err)
	}
	c.Printf("Writing %s\n", path)

	return nil
}
