// Package cmd is the Cobra command tree for polymax (spec.md §6 CLI
// surface), grounded on the teacher's cmd/recast/cmd layout: a RootCmd
// carrying every flag plus a --config YAML override, run from main.go's
// Execute.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var p params

// RootCmd is polymax's single command: "polymax [flags] basename", where
// basename is the input's .instance file with its extension stripped
// (spec.md §6's "positional final argument").
var RootCmd = &cobra.Command{
	Use:   "polymax [flags] basename",
	Short: "construct an area-extremal simple polygon over a 2D point set",
	Long: `polymax builds a simple polygon over the points listed in
basename.instance that maximizes or minimizes enclosed area, using a
greedy constructive pass optionally followed by local-search refinement.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if p.config != "" {
			cfg, err := loadConfig(p.config)
			if err != nil {
				return fmt.Errorf("reading config %s: %w", p.config, err)
			}
			p.applyConfig(cfg, c.Flags().Changed)
		}

		return run(c, p, args[0])
	},
}

// Execute runs RootCmd, printing any error and exiting non-zero
// (spec.md §7: "message-and-exit", no structured exit-code taxonomy).
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.Flags()
	flags.BoolVar(&p.maximize, "maximize", true, "maximize (true) or minimize (false) enclosed area")
	flags.Float64Var(&p.pen, "pen", 90, "weight function's perimeter-term divisor (1/alpha); must be >= 1")
	flags.StringVar(&p.hood, "hood", "2", "candidate neighborhood half-width in grid cells, or \"inf\"")
	flags.BoolVar(&p.opt, "opt", false, "apply local-search refinement after construction")
	flags.IntVar(&p.hops, "hops", 1, "maximum rerouted sub-path length for local search")
	flags.BoolVar(&p.multirun, "multirun", false, "repeat construction+refinement until timeout, keep the best")
	flags.Float64Var(&p.sigma, "sigma", 0, "standard deviation of Gaussian noise applied to the weight function")
	flags.Int64Var(&p.seed, "seed", 1, "random seed for seed-triangle choice and weight noise")
	flags.Float64Var(&p.timeout, "timeout", 150, "maximum seconds before starting a new multirun attempt")
	flags.IntVar(&p.nmin, "nmin", 0, "abort if the instance has fewer than this many points")
	flags.IntVar(&p.nmax, "nmax", 100000, "abort if the instance has more than this many points")
	flags.StringVar(&p.config, "config", "", "YAML file overriding any of the flags above")
}
