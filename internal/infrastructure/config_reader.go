package infrastructure

import (
	"os"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"mc-histogram/internal/domain"
)

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию
	r.setDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.Bins == 0 {
		config.Bins = 51
	}
	if config.Trials == 0 {
		config.Trials = 1000
	}
	if config.Variables == 0 {
		config.Variables = 1
	}
	if config.Prob == 0 {
		config.Prob = 0.05
	}
	if config.Workers == 0 {
		config.Workers = max(1, runtime.NumCPU()-1)
	}
	if config.Generator == "" {
		config.Generator = "uniform"
	}
	if config.Sigma == 0 {
		config.Sigma = 1.0
	}
	if config.Seed == 0 {
		config.Seed = 1
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Decimals == 0 {
		config.Decimals = 6
	}
}
