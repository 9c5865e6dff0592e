package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"hypokit/adapters/excel"
	"hypokit/adapters/rng"
	"hypokit/adapters/stats/distributions"
	"hypokit/adapters/stats/resample"
	"hypokit/domain/core"
	"hypokit/internal"
	"hypokit/internal/config"
	"hypokit/internal/errors"
	"hypokit/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error [%s]: %v\n", errorCode(err), err)
		os.Exit(1)
	}
}

// errorCode maps inference sentinels onto the application codes
func errorCode(err error) string {
	switch {
	case errors.IsAppError(err):
		return errors.GetCode(err)
	case core.IsInvalidArgument(err):
		return errors.CodeInvalidInput
	case core.IsNotSupported(err):
		return "NOT_SUPPORTED"
	}
	return errors.CodeInternalError
}

// app carries what every subcommand needs once the root has loaded configuration
type app struct {
	cfg        *config.Config
	log        *internal.Logger
	resolver   *excel.SampleResolver
	runID      core.RunID
	out        io.Writer
	envFile    string
	sheet      string
	format     string
	confidence float64
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "hypokit",
		Short: "Confidence intervals and hypothesis tests for one or two samples",
		Long: `hypokit estimates population parameters from samples and tests hypotheses about them.

Samples are given as FILE or FILE#COLUMN, where FILE is .csv, .xlsx or a plain
list of numbers, or inline with --values.

Example: hypokit mean data.csv#weight --null 70 --method t`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, errOut)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Environment file to load before reading configuration")
	rootCmd.PersistentFlags().StringVar(&a.sheet, "sheet", "", "Worksheet to read from .xlsx files (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "text", "Output format: text or json")
	rootCmd.PersistentFlags().Float64Var(&a.confidence, "confidence", 0, "Confidence level for intervals and tests (default: HYPOKIT_CONFIDENCE)")

	rootCmd.AddCommand(
		newMeanCmd(a),
		newVarianceCmd(a),
		newLikelihoodCmd(a),
		newCompareCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	if err := loadEnvFile(a.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := internal.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	a.log = internal.NewLoggerTo(level, errOut)

	if !cmd.Flags().Changed("confidence") {
		a.confidence = cfg.Inference.Confidence
	}
	if err := core.CheckProbability("confidence", a.confidence); err != nil {
		return errors.InvalidInputf(err, "--confidence")
	}
	if a.format != "text" && a.format != "json" {
		return errors.InvalidInput(fmt.Sprintf("--format must be text or json, got %q", a.format))
	}

	a.resolver = excel.NewSampleResolver(excel.ReaderConfig{Sheet: a.sheet, Logger: a.log})
	a.runID = core.NewRunID()
	a.log.Debug("run %s: %s with confidence %v, normal backend %s", a.runID, cmd.CommandPath(), a.confidence, cfg.Inference.NormalBackend)
	return nil
}

// loadEnvFile loads path into the environment without overriding set variables.
// A missing file is only an error when it was asked for explicitly.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "failed to load %s", path))
	}
	return nil
}

// normal returns the configured normal backend
func (a *app) normal() (ports.NormalDistribution, error) {
	if a.cfg.Inference.NormalBackend == config.NormalBackendLibrary {
		return distributions.NewNormal(), nil
	}
	tbl := a.cfg.Table
	if tbl == config.Default().Table {
		return distributions.SharedNormalTable(), nil
	}
	table, err := distributions.NewApproximateNormalTable(tbl.Step, tbl.Precision, tbl.Lower, tbl.Upper)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}
	a.log.Debug("built normal table with %d entries", table.Size())
	return table, nil
}

// resampler draws from a stream seeded by HYPOKIT_SEED, or from the clock when it is 0
func (a *app) resampler() *resample.Resampler {
	streams := rng.NewStreams()
	var r *resample.Resampler
	if seed := a.cfg.Inference.Seed; seed != 0 {
		r = resample.NewResampler(streams.SeededStream("bootstrap", seed))
	} else {
		r = resample.NewResampler(streams.Stream("bootstrap"))
	}
	r.SetWorkers(a.cfg.Inference.Workers)
	return r
}

// sample loads one sample from a reference or an inline list
func (a *app) sample(ref, inline string) ([]float64, error) {
	switch {
	case ref != "" && inline != "":
		return nil, errors.InvalidInput("give a sample reference or inline values, not both")
	case inline != "":
		return excel.ParseList(inline)
	case ref != "":
		return a.resolver.Resolve(ref)
	}
	return nil, errors.InvalidInput("no sample given")
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
