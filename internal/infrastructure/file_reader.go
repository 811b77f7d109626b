package infrastructure

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mc-histogram/internal/domain"
)

type TXTFileReader struct {
	logger *zap.Logger
}

func NewTXTFileReader(logger *zap.Logger) *TXTFileReader {
	return &TXTFileReader{logger: logger}
}

// ReadMatrix reads a whitespace-separated trial matrix. The first line
// carries one label per variable; every following line is one trial with
// one value per variable.
func (r *TXTFileReader) ReadMatrix(filename string) (*domain.TrialMatrix, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, domain.ErrInvalidFileFormat
	}

	// Первая строка - метки переменных
	varLabels := strings.Fields(lines[0])
	if len(varLabels) == 0 {
		return nil, domain.ErrInvalidFileFormat
	}

	var data [][]float64
	for i := 1; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(varLabels) {
			return nil, domain.ErrRaggedMatrix
		}

		row := make([]float64, len(fields))
		for j, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(value) {
				r.logger.Warn("NaN trial value, saturates to the lower edge bin",
					zap.Int("trial", i-1),
					zap.Int("variable", j))
			}
			row[j] = value
		}
		data = append(data, row)
	}

	return &domain.TrialMatrix{
		VarLabels: varLabels,
		Data:      data,
		Rows:      len(data),
		Cols:      len(varLabels),
	}, nil
}
