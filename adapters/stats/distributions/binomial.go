package distributions

import (
	"fmt"
	"math"
	"math/big"

	"hypokit/domain/core"
)

// Binomial computes exact binomial probabilities from the combinatorial formula
type Binomial struct{}

// NewBinomial creates a binomial provider
func NewBinomial() *Binomial {
	return &Binomial{}
}

func checkBinomial(successes, trials int, likelihood float64) error {
	if successes < 0 {
		return core.NewInvalidArgumentError("successes", fmt.Sprintf("cannot be negative, got %d", successes))
	}
	if trials < 0 {
		return core.NewInvalidArgumentError("trials", fmt.Sprintf("cannot be negative, got %d", trials))
	}
	if err := checkProbability("likelihood", likelihood); err != nil {
		return err
	}
	if successes > trials {
		return core.NewInvalidArgumentError("successes", fmt.Sprintf("%d exceeds %d trials", successes, trials))
	}
	return nil
}

// PMF returns C(trials, successes) p^successes (1-p)^(trials-successes)
func (Binomial) PMF(successes, trials int, likelihood float64) (float64, error) {
	if err := checkBinomial(successes, trials, likelihood); err != nil {
		return 0, err
	}
	return pmf(successes, trials, likelihood), nil
}

// LeftTailArea returns P(X <= successes)
func (Binomial) LeftTailArea(successes, trials int, likelihood float64) (float64, error) {
	if err := checkBinomial(successes, trials, likelihood); err != nil {
		return 0, err
	}
	switch {
	case likelihood == 0:
		return 1, nil
	case likelihood == 1:
		if successes == trials {
			return 1, nil
		}
		return 0, nil
	}
	// each term costs a few lgamma calls, keeping the sum linear in successes
	logP, logQ := math.Log(likelihood), math.Log1p(-likelihood)
	logN := lgamma(trials + 1)
	sum := 0.0
	for i := 0; i <= successes; i++ {
		sum += math.Exp(logN - lgamma(i+1) - lgamma(trials-i+1) + float64(i)*logP + float64(trials-i)*logQ)
	}
	return math.Min(sum, 1), nil
}

func pmf(k, n int, p float64) float64 {
	coef, _ := new(big.Float).SetInt(new(big.Int).Binomial(int64(n), int64(k))).Float64()
	if !math.IsInf(coef, 0) {
		return coef * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	// the coefficient overflows float64 for very large n; finish in log space
	if (p == 0 && k > 0) || (p == 1 && k < n) {
		return 0
	}
	logCoef := lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
	logP := 0.0
	if k > 0 {
		logP += float64(k) * math.Log(p)
	}
	if n-k > 0 {
		logP += float64(n-k) * math.Log1p(-p)
	}
	return math.Exp(logCoef + logP)
}

func lgamma(x int) float64 {
	v, _ := math.Lgamma(float64(x))
	return v
}
