// Package config loads model configurations from yaml and carries the
// catalog's named presets.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"qmodels"
)

// ModelConfig selects a model and its physical parameters.
// Only the fields the selected model uses are read.
type ModelConfig struct {
	Model string `yaml:"model"`

	N       int `yaml:"n"`
	NAtoms  int `yaml:"n_atoms"`
	NCavity int `yaml:"n_cavity"`
	NSpins  int `yaml:"n_spins"`
	NSites  int `yaml:"n_sites"`
	NLevels int `yaml:"n_levels"`

	Wc float64 `yaml:"wc"`
	Wa float64 `yaml:"wa"`
	G  float64 `yaml:"g"`
	Jx float64 `yaml:"jx"`
	Jy float64 `yaml:"jy"`
	Jz float64 `yaml:"jz"`
	T  float64 `yaml:"t"`
	U  float64 `yaml:"u"`
}

type Config struct {
	Models []ModelConfig `yaml:"models"`
}

// Spec returns the typed model the configuration selects.
func (c ModelConfig) Spec() (qmodels.Model, error) {
	switch c.Model {
	case "jaynes-cummings":
		return qmodels.JaynesCummings{N: c.N, Wc: c.Wc, Wa: c.Wa, G: c.G}, nil
	case "rabi":
		return qmodels.Rabi{N: c.N, Wc: c.Wc, Wa: c.Wa, G: c.G}, nil
	case "tavis-cummings":
		return qmodels.TavisCummings{NAtoms: c.NAtoms, NCavity: c.NCavity, Wc: c.Wc, Wa: c.Wa, G: c.G}, nil
	case "dicke":
		return qmodels.Dicke{NAtoms: c.NAtoms, NCavity: c.NCavity, Wc: c.Wc, Wa: c.Wa, G: c.G}, nil
	case "heisenberg":
		return qmodels.HeisenbergChain{NSpins: c.NSpins, Jx: c.Jx, Jy: c.Jy, Jz: c.Jz}, nil
	case "bose-hubbard":
		return qmodels.BoseHubbard{NSites: c.NSites, NLevels: c.NLevels, T: c.T, U: c.U}, nil
	default:
		return nil, errors.Errorf("unknown model %q", c.Model)
	}
}

// Load reads a Config from a yaml file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(err, path)
	}
	if len(cfg.Models) == 0 {
		return nil, errors.Errorf("%s: no models", path)
	}
	return cfg, nil
}

// Presets are the reference parameter sets of each cataloged model.
var Presets = map[string]ModelConfig{
	"jaynes-cummings": {Model: "jaynes-cummings", N: 5, Wc: 1.0, Wa: 1.0, G: 0.1},
	"rabi":            {Model: "rabi", N: 5, Wc: 1.0, Wa: 1.0, G: 0.1},
	"tavis-cummings":  {Model: "tavis-cummings", NAtoms: 2, NCavity: 3, Wc: 1.0, Wa: 1.0, G: 0.1},
	"dicke":           {Model: "dicke", NAtoms: 4, NCavity: 5, Wc: 1.0, Wa: 1.0, G: 0.5},
	"heisenberg":      {Model: "heisenberg", NSpins: 3, Jx: 1.0, Jy: 1.0, Jz: 1.0},
	"bose-hubbard":    {Model: "bose-hubbard", NSites: 3, NLevels: 2, T: 1.0, U: 2.0},
}

// PresetNames lists the presets in catalog order.
var PresetNames = []string{
	"jaynes-cummings", "rabi", "tavis-cummings", "dicke", "heisenberg", "bose-hubbard",
}

// Default returns the configuration running the whole catalog with its
// reference parameters.
func Default() *Config {
	cfg := &Config{}
	for _, name := range PresetNames {
		cfg.Models = append(cfg.Models, Presets[name])
	}
	return cfg
}
