package distributions

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"hypokit/domain/core"

	"gonum.org/v1/gonum/floats"
)

// Default grid of the approximate normal table
const (
	DefaultTableStep       = 0.001
	DefaultTablePrecision  = 3
	DefaultTableLowerBound = -5.0
	DefaultTableUpperBound = 5.0
)

// ApproximateNormalTable approximates the standard normal CDF by accumulating the
// density over a fixed grid. Keys are grid points rounded to precision decimals;
// areas[i] is the normalized running sum up to and including keys[i].
// The table is immutable once built and safe for concurrent use.
type ApproximateNormalTable struct {
	step       float64
	precision  int
	lowerBound float64
	upperBound float64

	keys  []float64
	areas []float64
}

// NewApproximateNormalTable builds a table over [lowerBound, upperBound].
// precision should match the number of decimals in step.
func NewApproximateNormalTable(step float64, precision int, lowerBound, upperBound float64) (*ApproximateNormalTable, error) {
	if math.IsNaN(step) || step <= 0 {
		return nil, core.NewInvalidArgumentError("step", fmt.Sprintf("must be positive, got %v", step))
	}
	if precision < 0 {
		return nil, core.NewInvalidArgumentError("precision", fmt.Sprintf("cannot be negative, got %d", precision))
	}
	if math.IsNaN(lowerBound) || math.IsInf(lowerBound, 0) {
		return nil, core.NewInvalidArgumentError("lowerBound", "must be a finite number")
	}
	if math.IsNaN(upperBound) || math.IsInf(upperBound, 0) {
		return nil, core.NewInvalidArgumentError("upperBound", "must be a finite number")
	}
	if lowerBound > upperBound {
		return nil, core.NewInvalidArgumentError("bounds", fmt.Sprintf("lower bound %v exceeds upper bound %v", lowerBound, upperBound))
	}

	t := &ApproximateNormalTable{
		step:       step,
		precision:  precision,
		lowerBound: lowerBound,
		upperBound: upperBound,
	}
	t.build()
	return t, nil
}

// NewDefaultNormalTable builds a table with the default grid
func NewDefaultNormalTable() *ApproximateNormalTable {
	t, err := NewApproximateNormalTable(DefaultTableStep, DefaultTablePrecision, DefaultTableLowerBound, DefaultTableUpperBound)
	if err != nil {
		panic(err) // defaults are valid
	}
	return t
}

var sharedTable = sync.OnceValue(NewDefaultNormalTable)

// SharedNormalTable returns a process-wide default table, built on first use
func SharedNormalTable() *ApproximateNormalTable {
	return sharedTable()
}

func (t *ApproximateNormalTable) build() {
	size := int((t.upperBound-t.lowerBound)/t.step) + 2
	t.keys = make([]float64, 0, size)
	density := make([]float64, 0, size)

	for cursor := t.lowerBound; cursor <= t.upperBound; cursor = t.round(cursor + t.step) {
		t.keys = append(t.keys, cursor)
		density = append(density, PDF(cursor))
	}

	t.areas = make([]float64, len(density))
	floats.CumSum(t.areas, density)
	total := t.areas[len(t.areas)-1]
	for i := range t.areas {
		t.areas[i] /= total
	}
}

func (t *ApproximateNormalTable) round(v float64) float64 {
	scale := math.Pow(10, float64(t.precision))
	return math.Round(v*scale) / scale
}

// PDF is the standard normal density
func PDF(x float64) float64 {
	return math.Exp(-(x*x)/2) / math.Sqrt(2*math.Pi)
}

// LeftTailArea returns the approximate P(Z <= z). z is rounded to the table
// precision; values below the grid report 0 and values above it report 1.
func (t *ApproximateNormalTable) LeftTailArea(z float64) (float64, error) {
	if err := checkValue("z", z); err != nil {
		return 0, err
	}
	z = t.round(z)
	if z < t.lowerBound {
		return 0, nil
	}
	if z > t.upperBound {
		return 1, nil
	}
	idx := sort.SearchFloat64s(t.keys, z)
	if idx == len(t.keys) {
		return 1, nil
	}
	return t.areas[idx], nil
}

// Quantile returns the first grid point whose cumulative area reaches percentile,
// or the upper bound when none does
func (t *ApproximateNormalTable) Quantile(percentile float64) (float64, error) {
	if err := checkProbability("percentile", percentile); err != nil {
		return 0, err
	}
	idx := sort.SearchFloat64s(t.areas, percentile)
	if idx == len(t.areas) {
		return t.upperBound, nil
	}
	return t.keys[idx], nil
}

// Size returns the number of grid points
func (t *ApproximateNormalTable) Size() int {
	return len(t.keys)
}
