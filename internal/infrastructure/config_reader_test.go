package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	reader := NewYAMLConfigReader(zap.NewNop())

	t.Run("fills defaults for omitted fields", func(t *testing.T) {
		path := writeConfig(t, "lower: -1.0\nupper: 1.0\n")
		config, err := reader.ReadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Bins != 51 || config.Trials != 1000 || config.Variables != 1 {
			t.Fatalf("unexpected defaults: bins=%d trials=%d variables=%d",
				config.Bins, config.Trials, config.Variables)
		}
		if config.Prob != 0.05 {
			t.Fatalf("expected default prob 0.05, got %g", config.Prob)
		}
		if config.Generator != "uniform" || config.LogLevel != "info" {
			t.Fatalf("unexpected defaults: generator=%q log_level=%q",
				config.Generator, config.LogLevel)
		}
		if config.Workers < 1 {
			t.Fatalf("expected at least one worker, got %d", config.Workers)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		path := writeConfig(t, "lower: 0\nupper: 10\nbins: 11\ntrials: 500\nprob: 0.2\ngenerator: normal\nsigma: 2.5\n")
		config, err := reader.ReadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Bins != 11 || config.Trials != 500 || config.Prob != 0.2 {
			t.Fatalf("explicit values lost: bins=%d trials=%d prob=%g",
				config.Bins, config.Trials, config.Prob)
		}
		if config.Sigma != 2.5 {
			t.Fatalf("expected sigma 2.5, got %g", config.Sigma)
		}
	})

	t.Run("rejects a reversed range", func(t *testing.T) {
		path := writeConfig(t, "lower: 5.0\nupper: 1.0\n")
		if _, err := reader.ReadConfig(path); err == nil {
			t.Fatal("expected validation error for upper <= lower")
		}
	})

	t.Run("rejects an out of range probability", func(t *testing.T) {
		path := writeConfig(t, "lower: 0\nupper: 1\nprob: 1.5\n")
		if _, err := reader.ReadConfig(path); err == nil {
			t.Fatal("expected validation error for prob > 1")
		}
	})

	t.Run("reports a missing file", func(t *testing.T) {
		if _, err := reader.ReadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})
}
