package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunParams tunes the exploration loop and the narrowing depth the
// compactor uses. Defaults apply when a field is absent from the YAML file
// or when no file is supplied at all.
type RunParams struct {
	// HardIterationLimit bounds the exploration loop; exceeding it without
	// satisfying the termination check surfaces engineerr.BudgetError.
	HardIterationLimit int `yaml:"hardIterationLimit"`

	// DistinguishingDepth is k, the recursion bound for compact.IsDifferent.
	DistinguishingDepth int `yaml:"distinguishingDepth"`

	// PingBatchSize is the max (bound, candidate) pairs enumerated per
	// iteration's ping cascade stage.
	PingBatchSize int `yaml:"pingBatchSize"`

	// FancyTake is the number of top-N rooms (smallest potential,
	// tie-broken by shortest path) probed by the fancy cascade stage.
	FancyTake int `yaml:"fancyTake"`

	// RegularTemplateCount is the number of templated plans emitted per
	// iteration's regular cascade stage.
	RegularTemplateCount int `yaml:"regularTemplateCount"`

	// MasterSeed seeds every RNG stream the engine derives (random-fill
	// tails, fixture oracle generation in tests). Zero means caller-chosen.
	MasterSeed uint64 `yaml:"masterSeed"`
}

// DefaultRunParams returns the parameter set used when no YAML file is
// supplied, or to fill in fields a partial file omits.
func DefaultRunParams() RunParams {
	return RunParams{
		HardIterationLimit:   500,
		DistinguishingDepth:  2,
		PingBatchSize:        10,
		FancyTake:            3,
		RegularTemplateCount: 4,
		MasterSeed:           1,
	}
}

// LoadRunParams reads and validates a YAML parameter file, starting from
// DefaultRunParams and overlaying whatever fields the file sets.
func LoadRunParams(path string) (*RunParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runconfig: reading run params: %w", err)
	}

	params := DefaultRunParams()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("runconfig: parsing run params YAML: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("runconfig: validating run params: %w", err)
	}
	return &params, nil
}

// Validate checks every field is in a usable range.
func (p *RunParams) Validate() error {
	if p.HardIterationLimit < 1 {
		return fmt.Errorf("hardIterationLimit must be >= 1, got %d", p.HardIterationLimit)
	}
	if p.DistinguishingDepth < 0 {
		return fmt.Errorf("distinguishingDepth must be >= 0, got %d", p.DistinguishingDepth)
	}
	if p.PingBatchSize < 1 {
		return fmt.Errorf("pingBatchSize must be >= 1, got %d", p.PingBatchSize)
	}
	if p.FancyTake < 0 {
		return fmt.Errorf("fancyTake must be >= 0, got %d", p.FancyTake)
	}
	if p.RegularTemplateCount < 0 {
		return fmt.Errorf("regularTemplateCount must be >= 0, got %d", p.RegularTemplateCount)
	}
	return nil
}
