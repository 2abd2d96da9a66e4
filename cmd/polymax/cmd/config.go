package cmd

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the optional --config override file (spec.md §6's supplemental
// YAML file), read with gopkg.in/yaml.v2. Every field is a pointer so a
// field absent from the file leaves the corresponding flag's value (default
// or explicit CLI override) untouched.
type Config struct {
	Maximize *bool    `yaml:"maximize"`
	Pen      *float64 `yaml:"pen"`
	Hood     *string  `yaml:"hood"`
	Opt      *bool    `yaml:"opt"`
	Hops     *int     `yaml:"hops"`
	Multirun *bool    `yaml:"multirun"`
	Sigma    *float64 `yaml:"sigma"`
	Seed     *int64   `yaml:"seed"`
	Timeout  *float64 `yaml:"timeout"`
	NMin     *int     `yaml:"nmin"`
	NMax     *int     `yaml:"nmax"`
}

// loadConfig reads and parses a YAML config file at path.
func loadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyConfig overrides any of params' fields that cfg sets explicitly,
// provided the corresponding flag was not itself passed on the command
// line (explicit flags always win over the config file).
func (p *params) applyConfig(cfg Config, changed func(name string) bool) {
	if cfg.Maximize != nil && !changed("maximize") {
		p.maximize = *cfg.Maximize
	}
	if cfg.Pen != nil && !changed("pen") {
		p.pen = *cfg.Pen
	}
	if cfg.Hood != nil && !changed("hood") {
		p.hood = *cfg.Hood
	}
	if cfg.Opt != nil && !changed("opt") {
		p.opt = *cfg.Opt
	}
	if cfg.Hops != nil && !changed("hops") {
		p.hops = *cfg.Hops
	}
	if cfg.Multirun != nil && !changed("multirun") {
		p.multirun = *cfg.Multirun
	}
	if cfg.Sigma != nil && !changed("sigma") {
		p.sigma = *cfg.Sigma
	}
	if cfg.Seed != nil && !changed("seed") {
		p.seed = *cfg.Seed
	}
	if cfg.Timeout != nil && !changed("timeout") {
		p.timeout = *cfg.Timeout
	}
	if cfg.NMin != nil && !changed("nmin") {
		p.nmin = *cfg.NMin
	}
	if cfg.NMax != nil && !changed("nmax") {
		p.nmax = *cfg.NMax
	}
}
