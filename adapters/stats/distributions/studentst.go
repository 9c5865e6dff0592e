package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// StudentsT wraps gonum's Student's t distribution with unit scale
type StudentsT struct{}

// NewStudentsT creates a t provider
func NewStudentsT() *StudentsT {
	return &StudentsT{}
}

func (StudentsT) dist(df float64) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
}

// LeftTailArea returns P(T <= t) with df degrees of freedom
func (s StudentsT) LeftTailArea(t float64, df float64) (float64, error) {
	if err := checkValue("t", t); err != nil {
		return 0, err
	}
	if err := checkDF("df", df); err != nil {
		return 0, err
	}
	return s.dist(df).CDF(t), nil
}

// Quantile returns the t value whose left-tail area equals percentile
func (s StudentsT) Quantile(percentile float64, df float64) (float64, error) {
	if err := checkProbability("percentile", percentile); err != nil {
		return 0, err
	}
	if err := checkDF("df", df); err != nil {
		return 0, err
	}
	return s.dist(df).Quantile(percentile), nil
}
