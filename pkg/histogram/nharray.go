package histogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNormalized is returned by Accumulate once the array has been
	// normalized by a Range call.
	ErrNormalized = errors.New("histogram array has already been normalized, it can not be updated")

	// ErrDimensionMismatch is returned when a sample vector does not hold
	// exactly one value per variable.
	ErrDimensionMismatch = errors.New("sample dimensions and histogram array dimensions do not match")
)

// NHArray держит по одной гистограмме фиксированного диапазона на каждую
// переменную. Each of the elems rows counts how often that variable's draws
// fell into each of the bins spanning [lower, upper].
//
// The lifecycle is strict: New -> Accumulate (one call per trial) -> Range.
// The first Range call converts every row from raw counts to probabilities
// and latches the array; after that Accumulate fails and further Range calls
// reuse the normalized densities.
type NHArray struct {
	lower      float64
	upper      float64
	binWidth   float64
	bins       int
	elems      int
	counts     []float64
	normalized bool
}

// New allocates a zeroed histogram array for elems variables with bins bins
// spanning [lower, upper]. The arguments are not validated: bins < 2 or a
// reversed range produce a degenerate bin width, exactly as requested.
func New(lower, upper float64, bins, elems int) *NHArray {
	return &NHArray{
		lower:    lower,
		upper:    upper,
		bins:     bins,
		elems:    elems,
		binWidth: (upper - lower) / float64(bins-1),
		counts:   make([]float64, elems*bins),
	}
}

// BinWidth returns the distance between adjacent bin centers.
func (h *NHArray) BinWidth() float64 { return h.binWidth }

// Elems returns the number of variables (rows) held.
func (h *NHArray) Elems() int { return h.elems }

// Bins returns the number of bins per variable.
func (h *NHArray) Bins() int { return h.bins }

// Normalized reports whether the array has been converted to densities.
func (h *NHArray) Normalized() bool { return h.normalized }

// BinCenter returns the value the given bin index represents.
func (h *NHArray) BinCenter(bin int) float64 {
	return h.lower + h.binWidth*float64(bin)
}

// Row returns the counters of variable i as a view into the shared buffer.
// Before normalization these are raw counts, afterwards probabilities.
func (h *NHArray) Row(i int) []float64 {
	return h.counts[i*h.bins : (i+1)*h.bins]
}

// Accumulate records one full trial: exactly one draw per variable. Each
// value is mapped to the nearest bin center and out-of-range values saturate
// to the edge bins instead of being dropped.
func (h *NHArray) Accumulate(samples []float64) error {
	if h.normalized {
		return ErrNormalized
	}
	if len(samples) != h.elems {
		return ErrDimensionMismatch
	}

	for i, val := range samples {
		row := h.Row(i)
		bin := int(math.RoundToEven((val - h.lower) / h.binWidth))
		if bin < 0 {
			bin = 0
		}
		if bin > h.bins-1 {
			bin = h.bins - 1
		}
		row[bin]++
	}
	return nil
}

// normalizeRow делит строку на сумму её счётчиков. A row that never received
// a sample divides by zero and fills with NaN; that is left to the caller.
func (h *NHArray) normalizeRow(i int) {
	row := h.Row(i)
	n := floats.Sum(row)
	for bin := range row {
		row[bin] /= n
	}
}

// Range returns, per variable, the pair of values enclosing the central
// probability mass once prob is split evenly over both tails. The first call
// normalizes every row in place and latches the array read-only.
//
// The lower bound is deliberately conservative: it is placed one bin to the
// left of the bin whose cumulative probability first exceeds prob/2. A bound
// the scan never reaches stays NaN.
func (h *NHArray) Range(prob float64) [][2]float64 {
	if !h.normalized {
		for i := 0; i < h.elems; i++ {
			h.normalizeRow(i)
		}
		h.normalized = true
	}

	pLow := prob / 2
	pHigh := 1 - pLow

	bounds := make([][2]float64, h.elems)
	for i := range bounds {
		bounds[i] = [2]float64{math.NaN(), math.NaN()}
		p := 0.0
		gotLow := false
		for bin, density := range h.Row(i) {
			p += density
			if p > pLow && !gotLow {
				bounds[i][0] = h.lower + h.binWidth*float64(bin-1)
				gotLow = true
			}
			if p > pHigh {
				bounds[i][1] = h.lower + h.binWidth*float64(bin)
				break
			}
		}
	}
	return bounds
}

// Free releases the counters buffer. The receiver must not be used again
// afterwards; the handle has a single owner and is freed at most once.
func (h *NHArray) Free() {
	h.counts = nil
}
