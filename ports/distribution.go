package ports

// NormalDistribution is the standard normal collaborator used by the z-based
// analyzers. Implementations: a discretized table or a library CDF.
type NormalDistribution interface {
	// LeftTailArea returns P(Z <= z)
	LeftTailArea(z float64) (float64, error)

	// Quantile returns the smallest z whose left-tail area is >= percentile
	Quantile(percentile float64) (float64, error)
}

// TDistribution is Student's t parameterized by degrees of freedom
type TDistribution interface {
	LeftTailArea(t float64, df float64) (float64, error)
	Quantile(percentile float64, df float64) (float64, error)
}

// ChiSquaredDistribution exposes chi-squared tail areas and critical values
type ChiSquaredDistribution interface {
	LeftTailArea(x float64, df float64) (float64, error)
	Quantile(percentile float64, df float64) (float64, error)

	// UpperCritical is the quantile at 1 - (1-confidenceLevel)/2
	UpperCritical(confidenceLevel float64, df float64) (float64, error)

	// LowerCritical is the quantile at (1-confidenceLevel)/2
	LowerCritical(confidenceLevel float64, df float64) (float64, error)
}

// FDistribution exposes Fisher-Snedecor tail areas and critical values
type FDistribution interface {
	LeftTailArea(f float64, df1, df2 float64) (float64, error)
	Quantile(percentile float64, df1, df2 float64) (float64, error)
	UpperCritical(confidenceLevel float64, df1, df2 float64) (float64, error)
	LowerCritical(confidenceLevel float64, df1, df2 float64) (float64, error)
}

// BinomialDistribution computes exact binomial probabilities
type BinomialDistribution interface {
	PMF(successes, trials int, likelihood float64) (float64, error)
	LeftTailArea(successes, trials int, likelihood float64) (float64, error)
}
