package main

import (
	"flag"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mc-histogram/internal/app"
	"mc-histogram/internal/domain"
	"mc-histogram/internal/infrastructure"
	"mc-histogram/pkg/histogram"
)

const (
	trialsFile   = "trials.txt"
	observedFile = "observed.txt"
	boundsFile   = "bounds.txt"
	pdfFile      = "pdf.txt"
	flagsFile    = "flags.txt"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	trials := flag.Int("trials", -1, "Number of surrogate trials (overrides config)")
	workers := flag.Int("workers", -1, "Number of workers (overrides config)")
	prob := flag.Float64("prob", -1, "Two-tailed probability (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	// Инициализация логгера
	logger := initLogger("info")
	defer logger.Sync()

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger)
	config, err := configReader.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}
	applyCommandLineFlags(config, *trials, *workers, *prob, *logLevel)

	// Обновляем уровень логирования
	logger = initLogger(config.LogLevel, config.LogFile)

	// Инициализация компонентов
	fileReader := infrastructure.NewTXTFileReader(logger)
	fileWriter := infrastructure.NewTXTFileWriter(logger)
	tester := app.NewMonteCarloTester(logger, config)

	// Накапливаем либо записанную матрицу испытаний, либо суррогаты
	hist, labels := accumulate(logger, config, fileReader, tester)
	defer hist.Free()

	logger.Info("Extracting confidence intervals",
		zap.Float64("prob", config.Prob),
		zap.Float64("bin_width", hist.BinWidth()))
	bounds := hist.Range(config.Prob)

	fmtVal := func(val float64) string {
		return strconv.FormatFloat(val, 'f', config.Decimals, 64)
	}

	if err := fileWriter.WriteBounds(boundsFile, labels, bounds, fmtVal); err != nil {
		logger.Fatal("Failed to write bounds", zap.Error(err))
	}
	logger.Info("Successfully written result", zap.String("file", boundsFile))

	if err := fileWriter.WritePDF(pdfFile, labels, hist, fmtVal); err != nil {
		logger.Error("Failed to write densities", zap.Error(err))
	}

	// Проверка значимости наблюдаемых значений, если они есть
	if _, err := os.Stat(observedFile); err == nil {
		observed, err := fileReader.ReadMatrix(observedFile)
		if err != nil {
			logger.Fatal("Failed to read observed values", zap.Error(err))
		}
		verdicts, err := tester.Flag(observed.Trial(0), bounds)
		if err != nil {
			logger.Fatal("Failed to flag observed values", zap.Error(err))
		}
		if err := fileWriter.WriteFlags(flagsFile, labels, verdicts, fmtVal); err != nil {
			logger.Fatal("Failed to write flags", zap.Error(err))
		}
		logger.Info("Successfully written result", zap.String("file", flagsFile))
	}

	logger.Info("Monte Carlo test completed successfully")
}

func accumulate(logger *zap.Logger, config *domain.Config, fileReader domain.FileReader,
	tester *app.MonteCarloTester) (hist *histogram.NHArray, labels []string) {
	if _, err := os.Stat(trialsFile); err == nil {
		matrix, err := fileReader.ReadMatrix(trialsFile)
		if err != nil {
			logger.Fatal("Failed to read trial matrix", zap.Error(err))
		}
		logger.Info("Accumulating recorded trials",
			zap.Int("rows", matrix.Rows),
			zap.Int("cols", matrix.Cols))
		h, err := tester.RunMatrix(matrix)
		if err != nil {
			logger.Fatal("Failed to accumulate trial matrix", zap.Error(err))
		}
		return h, matrix.VarLabels
	}

	logger.Info("Generating surrogate trials",
		zap.Int("trials", config.Trials),
		zap.Int("variables", config.Variables),
		zap.String("generator", config.Generator),
		zap.Int("workers", config.Workers))
	h, err := tester.Run(func(seed uint64) domain.TrialSource {
		return app.NewSource(config, seed)
	})
	if err != nil {
		logger.Fatal("Failed to accumulate surrogate trials", zap.Error(err))
	}

	labels = make([]string, config.Variables)
	for i := range labels {
		labels[i] = "v" + strconv.Itoa(i+1)
	}
	return h, labels
}

func applyCommandLineFlags(config *domain.Config, trials, workers int, prob float64, logLevel string) {
	if trials >= 0 {
		config.Trials = trials
	}
	if workers >= 0 {
		config.Workers = workers
	}
	if prob >= 0 {
		config.Prob = prob
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	for _, item := range logfileName {
		if item != "" {
			outputPath = append(outputPath, item)
		}
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, _ := config.Build()
	return logger
}
