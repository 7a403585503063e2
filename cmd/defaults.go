package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// defaultsFilePath is the optional sidecar consulted when the CLI is
// invoked with its algorithm/quantum flags at their built-in defaults
// (FCFS / 10).
// Its presence is entirely optional: a missing file is not an error.
const defaultsFilePath = "schedsim-defaults.yaml"

// defaultsFile mirrors the coefficients.yaml sidecar pattern: a small
// YAML document naming run defaults that the CLI flags would
// otherwise hardcode.
type defaultsFile struct {
	Algorithm string `yaml:"algorithm"`
	Quantum   int64  `yaml:"quantum"`
}

// applyDefaults overlays schedsim-defaults.yaml onto alg/quantum, but only
// where they hold the flag package's own defaults (FCFS / 10): an explicit
// -a or -q with any other value wins. The check is by value, so an explicit
// -a FCFS or -q 10 is overlaid like an omitted flag.
func applyDefaults(alg *sim.Algorithm, quantum *int64) error {
	data, err := os.ReadFile(defaultsFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", defaultsFilePath, err)
	}

	var df defaultsFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return fmt.Errorf("parsing %s: %w", defaultsFilePath, err)
	}

	if *alg == sim.AlgorithmFCFS && df.Algorithm != "" {
		parsed, err := sim.ParseAlgorithm(df.Algorithm)
		if err != nil {
			return fmt.Errorf("%s: %w", defaultsFilePath, err)
		}
		*alg = parsed
	}
	if *quantum == 10 && df.Quantum > 0 {
		*quantum = df.Quantum
	}
	return nil
}
