package app

import (
	"sync"

	"go.uber.org/zap"

	"mc-histogram/internal/domain"
	"mc-histogram/pkg/histogram"
)

// MonteCarloTester fills a histogram array with surrogate trials and turns
// the result into per-variable confidence intervals.
type MonteCarloTester struct {
	logger *zap.Logger
	config *domain.Config
}

func NewMonteCarloTester(logger *zap.Logger, config *domain.Config) *MonteCarloTester {
	return &MonteCarloTester{
		logger: logger,
		config: config,
	}
}

// Run generates the configured number of surrogate trials and accumulates
// them. Workers only produce trial vectors; the histogram array has no
// internal locking, so every Accumulate call stays on this goroutine.
func (t *MonteCarloTester) Run(newSource func(seed uint64) domain.TrialSource) (*histogram.NHArray, error) {
	h := histogram.New(t.config.Lower, t.config.Upper, t.config.Bins, t.config.Variables)

	trialChan := make(chan []float64, t.config.Workers*2)
	var wg sync.WaitGroup

	// Запускаем воркеры
	for w := 0; w < t.config.Workers; w++ {
		count := t.config.Trials / t.config.Workers
		if w < t.config.Trials%t.config.Workers {
			count++
		}
		wg.Add(1)
		t.logger.Debug("Starting worker",
			zap.Int("id", w),
			zap.Int("trials", count))
		go func(id, count int) {
			defer wg.Done()
			src := newSource(t.config.Seed + uint64(id))
			for n := 0; n < count; n++ {
				trialChan <- src.Trial()
			}
		}(w, count)
	}

	go func() {
		wg.Wait()
		close(trialChan)
	}()

	// Собираем результаты
	for trial := range trialChan {
		if err := h.Accumulate(trial); err != nil {
			return nil, err
		}
	}

	t.logger.Info("Surrogate trials accumulated",
		zap.Int("trials", t.config.Trials),
		zap.Int("variables", t.config.Variables))
	return h, nil
}

// RunMatrix accumulates a pre-recorded trial matrix, one call per trial row.
func (t *MonteCarloTester) RunMatrix(m *domain.TrialMatrix) (*histogram.NHArray, error) {
	h := histogram.New(t.config.Lower, t.config.Upper, t.config.Bins, m.Cols)

	for i := 0; i < m.Rows; i++ {
		if err := h.Accumulate(m.Trial(i)); err != nil {
			return nil, err
		}
	}

	t.logger.Info("Trial matrix accumulated",
		zap.Int("trials", m.Rows),
		zap.Int("variables", m.Cols))
	return h, nil
}

// Flag marks each variable whose observed value falls outside its Monte
// Carlo interval. A NaN bound never flags a variable.
func (t *MonteCarloTester) Flag(observed []float64, bounds [][2]float64) ([]domain.Verdict, error) {
	if len(observed) != len(bounds) {
		return nil, domain.ErrLengthMismatch
	}

	verdicts := make([]domain.Verdict, len(observed))
	for i, x := range observed {
		lower, upper := bounds[i][0], bounds[i][1]
		verdicts[i] = domain.Verdict{
			Observed:    x,
			Lower:       lower,
			Upper:       upper,
			Significant: x < lower || x > upper,
		}
	}
	return verdicts, nil
}
