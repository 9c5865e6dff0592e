package main

import (
	"fmt"

	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/internal/errors"
	"hypokit/internal/inference/analyzer"

	"github.com/spf13/cobra"
)

// tailTests groups the directional tests of one analyzer or comparer
type tailTests struct {
	right, left, twin analyzer.TailTest
	pValue            func(inference.Tail, float64) (float64, error)
}

// decide fills the report with a decision per tail. When p-values are
// available each tail is decided from its reported p.
func decide(report *inference.Report, tests tailTests, nullValue, type1Confidence float64) error {
	report.Decisions = make(map[inference.Tail]bool, len(inference.Tails))
	if tests.pValue != nil {
		report.PValues = make(map[inference.Tail]float64, len(inference.Tails))
	}
	for _, tail := range inference.Tails {
		test, err := analyzer.SelectTest(tail, tests.right, tests.left, tests.twin)
		if err != nil {
			return err
		}
		if test == nil {
			continue
		}
		if tests.pValue == nil {
			accepted, err := test(nullValue, type1Confidence)
			if err != nil {
				return err
			}
			report.Decisions[tail] = accepted
			continue
		}
		// one draw decides and reports, so a resampling p-value cannot
		// disagree with its own decision
		if err := core.CheckProbability("type1Confidence", type1Confidence); err != nil {
			return err
		}
		p, err := tests.pValue(tail, nullValue)
		if err != nil {
			return err
		}
		report.PValues[tail] = p
		report.Decisions[tail] = p <= 1-type1Confidence
	}
	return nil
}

func (a *app) newReport(analysis string, samples ...[]float64) *inference.Report {
	report := &inference.Report{
		RunID:           a.runID,
		Analysis:        analysis,
		ConfidenceLevel: a.confidence,
		Extras:          map[string]float64{},
	}
	for _, values := range samples {
		report.SampleSizes = append(report.SampleSizes, len(values))
		report.SampleHashes = append(report.SampleHashes, core.HashSample(values))
	}
	return report
}

// pValuer is implemented by the mean analyzers
type pValuer interface {
	PValue(tail inference.Tail, nullMean float64) (float64, error)
}

func newMeanCmd(a *app) *cobra.Command {
	var inline, method string
	var nullMean, width, power, delta float64
	var resamples int

	cmd := &cobra.Command{
		Use:   "mean [sample]",
		Short: "Estimate and test a population mean",
		Long: `Estimate a population mean with the normal, Student's t or bootstrap method.

--null runs the right, left and twin tail tests against a hypothesized mean.
--width plans the sample size for an interval of that width (normal only).
--power with --null adds power-aware tests, and with --delta the sample size
needed to detect that shift (normal only).

Example: hypokit mean --values 0.593,0.142,0.329,0.691,0.231 --null 0.3 --method t`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.sample(argAt(args, 0), inline)
			if err != nil {
				return err
			}
			m, err := a.meanAnalyzer(method, values, resamples)
			if err != nil {
				return err
			}

			report := a.newReport("mean/"+method, values)
			report.Estimate = m.Mean()
			report.Extras["std_dev"] = m.StdDev()
			if report.Interval, err = m.ConfidenceInterval(a.confidence); err != nil {
				return err
			}

			if cmd.Flags().Changed("width") {
				n, err := m.SampleSizeForInterval(a.confidence, width)
				if err != nil {
					return err
				}
				report.Extras["sample_size_for_interval"] = n
			}

			if cmd.Flags().Changed("null") {
				stat, err := m.TestStatistic(nullMean)
				if err != nil {
					return err
				}
				report.NullValue, report.TestStatistic = &nullMean, valueOf(stat)
				tests := tailTests{right: m.RightTailTest, left: m.LeftTailTest, twin: m.TwinTailTest}
				if pv, ok := m.(pValuer); ok {
					tests.pValue = pv.PValue
				}
				if err := decide(report, tests, nullMean, a.confidence); err != nil {
					return err
				}

				if cmd.Flags().Changed("power") {
					if err := meanPower(report, m, nullMean, a.confidence, power); err != nil {
						return err
					}
				}
			}

			if cmd.Flags().Changed("power") && cmd.Flags().Changed("delta") {
				n, err := m.SampleSizeForTesting(a.confidence, power, delta)
				if err != nil {
					return err
				}
				report.Extras["sample_size_for_testing"] = n
			}
			return a.write(report)
		},
	}

	cmd.Flags().StringVar(&inline, "values", "", "Inline sample, comma or space separated")
	cmd.Flags().StringVar(&method, "method", "normal", "Estimation method: normal, t or bootstrap")
	cmd.Flags().Float64Var(&nullMean, "null", 0, "Hypothesized population mean")
	cmd.Flags().Float64Var(&width, "width", 0, "Interval width to plan a sample size for")
	cmd.Flags().Float64Var(&power, "power", 0.8, "Type II confidence (power) for planning and power-aware tests")
	cmd.Flags().Float64Var(&delta, "delta", 0, "Mean shift to detect when planning a sample size")
	cmd.Flags().IntVar(&resamples, "resamples", 0, "Bootstrap resamples (default: HYPOKIT_RESAMPLES)")
	return cmd
}

func (a *app) meanAnalyzer(method string, values []float64, resamples int) (analyzer.MeanAnalyzer, error) {
	switch method {
	case "normal":
		normal, err := a.normal()
		if err != nil {
			return nil, err
		}
		return analyzer.NewNormalMeanAnalyzer(values, normal)
	case "t":
		return analyzer.NewTMeanAnalyzer(values, nil)
	case "bootstrap":
		if resamples == 0 {
			resamples = a.cfg.Inference.Resamples
		}
		a.log.Info("bootstrapping %d resamples on %d workers", resamples, a.cfg.Inference.Workers)
		return analyzer.NewBootstrapMeanAnalyzer(values, resamples, a.resampler())
	}
	return nil, errors.InvalidInput(fmt.Sprintf("--method must be normal, t or bootstrap, got %q", method))
}

func meanPower(report *inference.Report, m analyzer.MeanAnalyzer, nullMean, type1, type2 float64) error {
	p, err := m.TestPower(nullMean, type1)
	if err != nil {
		return err
	}
	report.Extras["power"] = p
	report.Power = make(map[inference.Tail]inference.PowerDecision, len(inference.Tails))
	for _, tail := range inference.Tails {
		decision, err := m.PowerTest(tail, nullMean, type1, type2)
		if err != nil {
			return err
		}
		report.Power[tail] = decision
	}
	return nil
}

func newVarianceCmd(a *app) *cobra.Command {
	var inline string
	var testVariance float64

	cmd := &cobra.Command{
		Use:   "variance [sample]",
		Short: "Estimate and test the variance of a normal population",
		Long: `Estimate the standard deviation of a normal population with the chi-squared
distribution. The interval is reported for the standard deviation.

Example: hypokit variance fills.xlsx#volume --null 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.sample(argAt(args, 0), inline)
			if err != nil {
				return err
			}
			v, err := analyzer.NewVarianceAnalyzer(values, nil)
			if err != nil {
				return err
			}

			report := a.newReport("variance", values)
			report.Estimate = v.Variance()
			report.Extras["df"] = v.DF()
			if report.Interval, err = v.ConfidenceInterval(a.confidence); err != nil {
				return err
			}

			if cmd.Flags().Changed("null") {
				stat, err := v.TestStatistic(testVariance)
				if err != nil {
					return err
				}
				report.NullValue, report.TestStatistic = &testVariance, valueOf(stat)
				tests := tailTests{right: v.RightTailTest, left: v.LeftTailTest, twin: v.TwinTailTest}
				if err := decide(report, tests, testVariance, a.confidence); err != nil {
					return err
				}
			}
			return a.write(report)
		},
	}

	cmd.Flags().StringVar(&inline, "values", "", "Inline sample, comma or space separated")
	cmd.Flags().Float64Var(&testVariance, "null", 0, "Hypothesized population variance")
	return cmd
}

func newLikelihoodCmd(a *app) *cobra.Command {
	var inline string
	var testLikelihood, width float64

	cmd := &cobra.Command{
		Use:   "likelihood [sample]",
		Short: "Estimate and test a success likelihood from 0/1 outcomes",
		Long: `Estimate the success likelihood of a categorical population with the Wilson
interval and test it against the exact binomial distribution.

Example: hypokit likelihood --values 1,1,0,0,0,1,0 --null 0.2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.sample(argAt(args, 0), inline)
			if err != nil {
				return err
			}
			normal, err := a.normal()
			if err != nil {
				return err
			}
			l, err := analyzer.NewLikelihoodAnalyzer(values, nil, normal)
			if err != nil {
				return err
			}

			report := a.newReport("likelihood", values)
			report.Estimate = l.Likelihood()
			report.Extras["standard_error"] = l.StandardError()
			if report.Interval, err = l.ConfidenceInterval(a.confidence); err != nil {
				return err
			}

			if cmd.Flags().Changed("width") {
				n, err := l.SampleSizeForInterval(a.confidence, width)
				if err != nil {
					return err
				}
				report.Extras["sample_size_for_interval"] = n
			}

			if cmd.Flags().Changed("null") {
				stat, err := l.TestStatistic(testLikelihood)
				if err != nil {
					return err
				}
				report.NullValue, report.TestStatistic = &testLikelihood, valueOf(stat)
				tests := tailTests{right: l.RightTailTest, left: l.LeftTailTest, twin: l.TwinTailTest, pValue: l.PValue}
				if err := decide(report, tests, testLikelihood, a.confidence); err != nil {
					return err
				}
			}
			return a.write(report)
		},
	}

	cmd.Flags().StringVar(&inline, "values", "", "Inline 0/1 outcomes, comma or space separated")
	cmd.Flags().Float64Var(&testLikelihood, "null", 0, "Hypothesized success likelihood")
	cmd.Flags().Float64Var(&width, "width", 0, "Interval width to plan a sample size for")
	return cmd
}
