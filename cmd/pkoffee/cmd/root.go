package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/pkoffee"
	"github.com/arloliu/pkoffee/internal/logger"
	"github.com/arloliu/pkoffee/regression"
)

// EnvPrefix prefixes the environment variables read for every flag,
// e.g. PKOFFEE_INPUT or PKOFFEE_MAX_EVALUATIONS.
const EnvPrefix = "PKOFFEE"

const (
	flagInput          = "input"
	flagOutput         = "output"
	flagModels         = "models"
	flagSolver         = "solver"
	flagMaxEvaluations = "max-evaluations"
	flagSmoothPoints   = "smooth-points"
	flagVerbose        = "verbose"
	flagLogFormat      = "log-format"
)

var pkoffeeDescription = `
pkoffee fits candidate models of productivity as a function of cups of coffee.

It reads a CSV table with "cups" and "productivity" columns, fits every model
by bounded nonlinear least squares, ranks the models by R² and writes a figure
with the fitted curves over violin plots of the observations.

Compressed tables (.zst, .zstd, .s2, .sz, .lz4) are read transparently.
`

// Execute runs the root command and exits with status 1 on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand creates the pkoffee command with its own flag and environment binding.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:               "pkoffee [flags]",
		Short:             "fit and compare coffee/productivity models.",
		Long:              pkoffeeDescription,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), v)
		},
	}

	defaults := pkoffee.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringP(flagInput, "i", defaults.InputPath, "input CSV table, optionally compressed")
	flags.StringP(flagOutput, "o", defaults.OutputPath, "output PNG figure, replaced if present")
	flags.StringSlice(flagModels, nil, "models to fit, comma separated (default all)")
	flags.String(flagSolver, regression.SolverLevenbergMarquardt.String(), "solver: levenberg-marquardt or nelder-mead")
	flags.Int(flagMaxEvaluations, defaults.MaxEvaluations, "per-model budget of model evaluations")
	flags.Int(flagSmoothPoints, defaults.SmoothPoints, "number of points per fitted curve")
	flags.BoolP(flagVerbose, "v", false, "enable debug logging")
	flags.String(flagLogFormat, logger.FormatConsole, "log format: console or json")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return rootCmd
}

func run(stdout, stderr io.Writer, v *viper.Viper) error {
	log, _, err := logger.New(logger.Config{
		Verbose: v.GetBool(flagVerbose),
		Format:  v.GetString(flagLogFormat),
		Output:  stderr,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	solver, err := regression.SolverTypeFromString(v.GetString(flagSolver))
	if err != nil {
		return err
	}

	analysis, err := pkoffee.Run(pkoffee.Config{
		InputPath:      v.GetString(flagInput),
		OutputPath:     v.GetString(flagOutput),
		Models:         modelNames(v.GetStringSlice(flagModels)),
		Solver:         solver,
		MaxEvaluations: v.GetInt(flagMaxEvaluations),
		SmoothPoints:   v.GetInt(flagSmoothPoints),
		Logger:         log,
	})
	if analysis != nil {
		printRanking(stdout, analysis)
	}

	return err
}

// modelNames splits comma separated values; environment variables arrive as one string.
func modelNames(values []string) []string {
	var names []string
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

func printRanking(w io.Writer, analysis *pkoffee.Analysis) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tMODEL\tR²\tRMSE\tSTATUS\tPARAMS")
	for i, fit := range analysis.Fits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, fit.Name, formatScore(fit.R2), formatScore(fit.RMSE), fit.Status, formatParams(fit.Params))
	}
	_ = tw.Flush()
}

func formatScore(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}

	return fmt.Sprintf("%.4f", v)
}

func formatParams(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%.4g", p)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
