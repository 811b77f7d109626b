package infrastructure

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"mc-histogram/internal/domain"
	"mc-histogram/pkg/histogram"
)

type FmtFunc func(float64) string

type TXTFileWriter struct {
	logger *zap.Logger
}

func NewTXTFileWriter(logger *zap.Logger) *TXTFileWriter {
	return &TXTFileWriter{logger: logger}
}

// WriteBounds writes one line per variable: label, lower bound, upper bound.
func (w *TXTFileWriter) WriteBounds(filename string, labels []string, bounds [][2]float64, formatter FmtFunc) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	fmt.Fprintf(writer, "Var\tLower\tUpper\n")
	for i, pair := range bounds {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", labels[i], formatter(pair[0]), formatter(pair[1]))
	}

	return nil
}

// WritePDF writes the normalized densities: one line per bin with the bin
// center followed by one density per variable.
func (w *TXTFileWriter) WritePDF(filename string, labels []string, h *histogram.NHArray, formatter FmtFunc) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	fmt.Fprintf(writer, "Bin\t%s\n", strings.Join(labels, "\t"))
	for bin := 0; bin < h.Bins(); bin++ {
		cols := make([]string, h.Elems())
		for i := range cols {
			cols[i] = formatter(h.Row(i)[bin])
		}
		fmt.Fprintf(writer, "%s\t%s\n", formatter(h.BinCenter(bin)), strings.Join(cols, "\t"))
	}

	return nil
}

// WriteFlags writes the significance verdicts, one line per variable.
func (w *TXTFileWriter) WriteFlags(filename string, labels []string, verdicts []domain.Verdict, formatter FmtFunc) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	fmt.Fprintf(writer, "Var\tObserved\tLower\tUpper\tSignificant\n")
	for i, v := range verdicts {
		significant := 0
		if v.Significant {
			significant = 1
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\n",
			labels[i], formatter(v.Observed), formatter(v.Lower), formatter(v.Upper), significant)
	}

	return nil
}
