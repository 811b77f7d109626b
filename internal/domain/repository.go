package domain

// FileReader интерфейс для чтения файлов
type FileReader interface {
	ReadMatrix(filename string) (*TrialMatrix, error)
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}

// TrialSource produces one surrogate trial vector per call, one value per
// variable. Sources are not safe for concurrent use; give each worker its
// own instance.
type TrialSource interface {
	Trial() []float64
}
