package main

import (
	"hypokit/domain/inference"
	"hypokit/internal/inference/comparer"

	"github.com/spf13/cobra"
)

// pairFlags are the inline alternatives to two positional sample references
type pairFlags struct {
	values1, values2 string
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.values1, "values1", "", "Inline first sample")
	cmd.Flags().StringVar(&p.values2, "values2", "", "Inline second sample")
}

func (a *app) samplePair(args []string, p *pairFlags) ([]float64, []float64, error) {
	ref1, ref2 := argAt(args, 0), argAt(args, 1)
	// with --values1 a single reference names the second sample
	if p.values1 != "" && len(args) == 1 {
		ref1, ref2 = "", args[0]
	}
	sample1, err := a.sample(ref1, p.values1)
	if err != nil {
		return nil, nil, err
	}
	sample2, err := a.sample(ref2, p.values2)
	if err != nil {
		return nil, nil, err
	}
	return sample1, sample2, nil
}

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two populations",
		Long: `Compare the means, variances or success likelihoods of two populations.

Example: hypokit compare paired trial.csv#before trial.csv#after`,
	}
	cmd.AddCommand(
		newCompareMeansCmd(a, "means", "Welch comparison of means with unequal variances", func(s1, s2 []float64) (comparer.MeanComparer, error) {
			return comparer.NewWelchComparer(s1, s2, nil)
		}),
		newCompareMeansCmd(a, "paired", "Paired comparison of matched measurements", func(s1, s2 []float64) (comparer.MeanComparer, error) {
			return comparer.NewPairedComparer(s1, s2, nil)
		}),
		newCompareMeansCmd(a, "pooled", "Comparison of means assuming one shared variance", func(s1, s2 []float64) (comparer.MeanComparer, error) {
			return comparer.NewPooledComparer(s1, s2, nil)
		}),
		newCompareVariancesCmd(a),
		newCompareLikelihoodsCmd(a),
	)
	return cmd
}

type meanComparerFactory func(sample1, sample2 []float64) (comparer.MeanComparer, error)

func newCompareMeansCmd(a *app, name, short string, build meanComparerFactory) *cobra.Command {
	var pair pairFlags
	var delta float64

	cmd := &cobra.Command{
		Use:   name + " [sample1] [sample2]",
		Short: short,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample1, sample2, err := a.samplePair(args, &pair)
			if err != nil {
				return err
			}
			c, err := build(sample1, sample2)
			if err != nil {
				return err
			}

			report := a.newReport("compare/"+name, sample1, sample2)
			report.Estimate = c.Difference()
			report.Extras["df"] = c.DF()
			if pooled, ok := c.(*comparer.PooledComparer); ok {
				report.Extras["pooled_std_dev"] = pooled.PooledStdDev()
			}
			if report.Interval, err = c.ConfidenceInterval(a.confidence); err != nil {
				return err
			}

			stat, err := c.TestStatistic(delta)
			if err != nil {
				return err
			}
			report.NullValue, report.TestStatistic = &delta, valueOf(stat)
			tests := tailTests{right: c.RightTailTest, left: c.LeftTailTest, twin: c.TwinTailTest}
			if err := decide(report, tests, delta, a.confidence); err != nil {
				return err
			}
			return a.write(report)
		},
	}
	pair.register(cmd)
	cmd.Flags().Float64Var(&delta, "delta", 0, "Hypothesized difference mean1 - mean2")
	return cmd
}

func newCompareVariancesCmd(a *app) *cobra.Command {
	var pair pairFlags

	cmd := &cobra.Command{
		Use:   "variances [sample1] [sample2]",
		Short: "F comparison of two normal population variances",
		Long: `Compare two variances by their ratio var1/var2. The right tail accepts that
population 1 has the larger variance and the twin tail that they differ.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample1, sample2, err := a.samplePair(args, &pair)
			if err != nil {
				return err
			}
			c, err := comparer.NewVarianceRatioComparer(sample1, sample2, nil)
			if err != nil {
				return err
			}

			report := a.newReport("compare/variances", sample1, sample2)
			stat := c.TestStatistic()
			report.Estimate, report.TestStatistic = stat, valueOf(stat)
			report.Extras["df1"], report.Extras["df2"] = c.DF()
			if report.Interval, err = c.ConfidenceInterval(a.confidence); err != nil {
				return err
			}

			greater := func(_, type1 float64) (bool, error) { return c.GreaterTest(type1) }
			unequal := func(_, type1 float64) (bool, error) { return c.UnequalTest(type1) }
			if err := decide(report, tailTests{right: greater, twin: unequal}, 1, a.confidence); err != nil {
				return err
			}
			return a.write(report)
		},
	}
	pair.register(cmd)
	return cmd
}

func newCompareLikelihoodsCmd(a *app) *cobra.Command {
	var pair pairFlags

	cmd := &cobra.Command{
		Use:   "likelihoods [sample1] [sample2]",
		Short: "Compare the success likelihoods of two 0/1 populations",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample1, sample2, err := a.samplePair(args, &pair)
			if err != nil {
				return err
			}
			normal, err := a.normal()
			if err != nil {
				return err
			}
			c, err := comparer.NewLikelihoodDifferenceComparer(sample1, sample2, normal)
			if err != nil {
				return err
			}

			report := a.newReport("compare/likelihoods", sample1, sample2)
			stat := c.TestStatistic()
			report.Estimate, report.TestStatistic = c.Difference(), valueOf(stat)
			report.Extras["standard_error"] = c.StandardError()
			if report.Interval, err = c.ConfidenceInterval(a.confidence); err != nil {
				return err
			}

			tests := tailTests{
				right: func(_, type1 float64) (bool, error) { return c.Test(inference.TailRight, type1) },
				left:  func(_, type1 float64) (bool, error) { return c.Test(inference.TailLeft, type1) },
				twin:  func(_, type1 float64) (bool, error) { return c.Test(inference.TailTwin, type1) },
			}
			if err := decide(report, tests, 0, a.confidence); err != nil {
				return err
			}
			return a.write(report)
		},
	}
	pair.register(cmd)
	return cmd
}
