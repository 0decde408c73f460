// Package suite loads the description of a benchmark session: which
// kernels to run, how often, and with which parameters.
package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/workload"
)

// Config is a benchmark suite. Fields missing from a suite file keep
// their defaults.
type Config struct {
	// Runs is the number of sequential timed runs per kernel.
	Runs int `yaml:"runs" json:"runs" validate:"gt=0"`

	// Seed, when set, replaces the seed of every seeded kernel.
	Seed *int64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Kernels selects kernels by name. Empty means all of them.
	Kernels []string `yaml:"kernels,omitempty" json:"kernels,omitempty"`

	Params kernel.Params `yaml:"params" json:"params"`
}

// Default returns a suite that runs every kernel once with the default
// parameters.
func Default() Config {
	return Config{
		Runs:   1,
		Params: kernel.DefaultParams(),
	}
}

// Load reads a YAML suite from path on top of Default. Unknown keys are
// rejected so a misspelled parameter cannot silently fall back to its
// default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read suite file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML suite on top of Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parse suite: %v",
			workload.ErrInvalidConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks run count, kernel names and every kernel's parameters.
func (c Config) Validate() error {
	if err := workload.Validate(c); err != nil {
		return err
	}

	names := kernel.Names()
	for _, name := range c.Kernels {
		if !slices.Contains(names, name) {
			return fmt.Errorf("%w: unknown kernel %q",
				workload.ErrInvalidConfiguration, name)
		}
	}

	return nil
}

// Effective returns the kernel parameters with the seed override applied.
func (c Config) Effective() kernel.Params {
	if c.Seed == nil {
		return c.Params
	}

	return c.Params.WithSeed(*c.Seed)
}

// Selected returns the kernels the suite runs, in selection order.
func (c Config) Selected() ([]kernel.Kernel, error) {
	return kernel.Select(kernel.Registry(c.Effective()), c.Kernels)
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode suite: %w", err)
	}

	return enc.Close()
}
