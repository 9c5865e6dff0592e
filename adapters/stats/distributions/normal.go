package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is the standard normal backed by gonum's closed-form CDF and inverse CDF
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a library-backed standard normal provider
func NewNormal() *Normal {
	return &Normal{dist: distuv.UnitNormal}
}

// LeftTailArea returns P(Z <= z)
func (n *Normal) LeftTailArea(z float64) (float64, error) {
	if err := checkValue("z", z); err != nil {
		return 0, err
	}
	return n.dist.CDF(z), nil
}

// Quantile returns the z value whose left-tail area equals percentile
func (n *Normal) Quantile(percentile float64) (float64, error) {
	if err := checkProbability("percentile", percentile); err != nil {
		return 0, err
	}
	return n.dist.Quantile(percentile), nil
}
