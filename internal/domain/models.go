package domain

import (
	"errors"
	"fmt"
)

// Config представляет конфигурацию приложения
type Config struct {
	Lower     float64 `yaml:"lower"`
	Upper     float64 `yaml:"upper"`
	Bins      int     `yaml:"bins"`
	Prob      float64 `yaml:"prob"`
	Trials    int     `yaml:"trials"`
	Variables int     `yaml:"variables"`
	Workers   int     `yaml:"workers"`
	Generator string  `yaml:"generator"`
	Mu        float64 `yaml:"mu"`
	Sigma     float64 `yaml:"sigma"`
	Seed      uint64  `yaml:"seed"`
	LogLevel  string  `yaml:"log_level"`
	LogFile   string  `yaml:"log_file"`
	Decimals  int     `yaml:"decimals"`
}

// GeneratorKind представляет распределение суррогатных выборок
type GeneratorKind int

const (
	GeneratorUniform GeneratorKind = iota
	GeneratorNormal
)

func (c *Config) GetGenerator() GeneratorKind {
	switch c.Generator {
	case "normal":
		return GeneratorNormal
	default:
		return GeneratorUniform
	}
}

// Validate rejects parameter combinations the histogram engine itself
// accepts silently. Strictness lives here so the engine can stay permissive.
func (c *Config) Validate() error {
	if !(c.Upper > c.Lower) {
		return fmt.Errorf("upper (%g) must be greater than lower (%g)", c.Upper, c.Lower)
	}
	if c.Bins < 2 {
		return fmt.Errorf("bins must be at least 2, got %d", c.Bins)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.Variables < 1 {
		return fmt.Errorf("variables must be at least 1, got %d", c.Variables)
	}
	if c.Prob < 0 || c.Prob > 1 {
		return fmt.Errorf("prob must lie in [0, 1], got %g", c.Prob)
	}
	return nil
}

// TrialMatrix представляет матрицу испытаний: each row is one trial, each
// column one variable.
type TrialMatrix struct {
	VarLabels  []string
	Data       [][]float64
	Rows, Cols int
}

// Trial returns the sample vector of trial i, one value per variable.
func (m *TrialMatrix) Trial(i int) []float64 {
	return m.Data[i]
}

// Verdict is the per-variable outcome of a significance test: whether the
// observed value falls outside the Monte Carlo confidence interval.
type Verdict struct {
	Observed    float64
	Lower       float64
	Upper       float64
	Significant bool
}

var (
	ErrInvalidFileFormat = errors.New("invalid file format")
	ErrRaggedMatrix      = errors.New("trial rows have inconsistent lengths")
	ErrLengthMismatch    = errors.New("observed values and bounds have different lengths")
)
