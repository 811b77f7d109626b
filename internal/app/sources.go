package app

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"mc-histogram/internal/domain"
)

// UniformSource draws surrogate values uniformly over the histogram domain.
type UniformSource struct {
	dist  distuv.Uniform
	elems int
}

func NewUniformSource(lower, upper float64, elems int, seed uint64) *UniformSource {
	return &UniformSource{
		dist: distuv.Uniform{
			Min: lower,
			Max: upper,
			Src: rand.NewSource(seed),
		},
		elems: elems,
	}
}

func (s *UniformSource) Trial() []float64 {
	v := make([]float64, s.elems)
	for i := range v {
		v[i] = s.dist.Rand()
	}
	return v
}

// NormalSource draws surrogate values from a normal distribution.
type NormalSource struct {
	dist  distuv.Normal
	elems int
}

func NewNormalSource(mu, sigma float64, elems int, seed uint64) *NormalSource {
	return &NormalSource{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   rand.NewSource(seed),
		},
		elems: elems,
	}
}

func (s *NormalSource) Trial() []float64 {
	v := make([]float64, s.elems)
	for i := range v {
		v[i] = s.dist.Rand()
	}
	return v
}

// NewSource builds the trial source the configuration asks for.
func NewSource(config *domain.Config, seed uint64) domain.TrialSource {
	switch config.GetGenerator() {
	case domain.GeneratorNormal:
		return NewNormalSource(config.Mu, config.Sigma, config.Variables, seed)
	default:
		return NewUniformSource(config.Lower, config.Upper, config.Variables, seed)
	}
}
