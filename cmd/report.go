package cmd

import (
	"errors"
	"fmt"
	"strings"

	"covdelta.dev/pkg/covdelta/internal/adapter"
	"covdelta.dev/pkg/covdelta/internal/domain"
	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrCoverageBelowMinimum is returned when the aggregate coverage does not
// reach the configured minimum.
var ErrCoverageBelowMinimum = errors.New("coverage is below the minimum")

const reportLongDescription = `Compare the current LCOV report with an optional baseline report and
publish a coverage summary.

A minimum coverage of 0 disables the threshold check. When the current
report is missing the command exits successfully without publishing.`

var reportNameFlag string
var reportLcovFileFlag string
var reportLcovBaseFlag string
var reportMinCoverageFlag float64
var reportPrecisionFlag int
var reportSummaryFileFlag string
var reportSummaryFormatFlag string

// reportCmd represents the report command.
var reportCmd = baseReportCmd()

func baseReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "report",
		Short:        "Report coverage and its delta against a baseline",
		Long:         reportLongDescription,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			args, err := reportArgsFromConfig()
			if err != nil {
				return err
			}

			publisher, err := newPublisher(cmd)
			if err != nil {
				return err
			}

			result, err := newWorkflow(cmd, publisher).Report(cmd.Context(), args)
			if err != nil {
				return err
			}

			if !result.Skipped && !result.Passed {
				return fmt.Errorf("%w: %.2f%% < %.2f%%", ErrCoverageBelowMinimum, result.Percentage, args.MinCoverage)
			}

			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	cmd := baseReportCmd()
	configureReportFlags(cmd)

	return cmd
}

func init() {
	configureReportFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&reportNameFlag, nameFlagName, "n", viper.GetString(nameConfigKey), "name of the published check")
	bindFlagToConfig(cmd.Flags().Lookup(nameFlagName), nameConfigKey)

	cmd.Flags().StringVarP(&reportLcovFileFlag, lcovFileFlagName, "f", viper.GetString(lcovFileConfigKey), "current LCOV report")
	bindFlagToConfig(cmd.Flags().Lookup(lcovFileFlagName), lcovFileConfigKey)

	cmd.Flags().StringVarP(&reportLcovBaseFlag, lcovBaseFlagName, "b", viper.GetString(lcovBaseConfigKey), "baseline LCOV report to compare against")
	bindFlagToConfig(cmd.Flags().Lookup(lcovBaseFlagName), lcovBaseConfigKey)

	cmd.Flags().Float64VarP(&reportMinCoverageFlag, minCoverageFlagName, "m", viper.GetFloat64(minCoverageConfigKey), "minimum total coverage percentage (0 disables the check)")
	bindFlagToConfig(cmd.Flags().Lookup(minCoverageFlagName), minCoverageConfigKey)

	cmd.Flags().IntVar(&reportPrecisionFlag, precisionFlagName, viper.GetInt(precisionConfigKey), "decimal places for percentages and deltas")
	bindFlagToConfig(cmd.Flags().Lookup(precisionFlagName), precisionConfigKey)

	cmd.Flags().StringVar(&reportSummaryFileFlag, summaryFileFlagName, viper.GetString(summaryFileConfigKey), "append the summary to this file instead of stdout")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFileFlagName), summaryFileConfigKey)

	cmd.Flags().StringVar(&reportSummaryFormatFlag, summaryFormatFlagName, viper.GetString(summaryFormatConfigKey), "summary format: markdown or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFormatFlagName), summaryFormatConfigKey)
}

func reportArgsFromConfig() (domain.ReportArgs, error) {
	name := strings.TrimSpace(viper.GetString(nameConfigKey))
	if name == "" {
		return domain.ReportArgs{}, fmt.Errorf("--%s is required", nameFlagName)
	}

	minCoverage := viper.GetFloat64(minCoverageConfigKey)
	if minCoverage < 0 || minCoverage > 100 {
		return domain.ReportArgs{}, fmt.Errorf("--%s must be between 0 and 100, got %v", minCoverageFlagName, minCoverage)
	}

	precision := viper.GetInt(precisionConfigKey)
	if precision < 1 {
		return domain.ReportArgs{}, fmt.Errorf("--%s must be at least 1, got %d", precisionFlagName, precision)
	}

	return domain.ReportArgs{
		Name:        name,
		Current:     m.Path(viper.GetString(lcovFileConfigKey)),
		Baseline:    m.Path(viper.GetString(lcovBaseConfigKey)),
		MinCoverage: minCoverage,
		Precision:   precision,
	}, nil
}

func newPublisher(cmd *cobra.Command) (adapter.CheckPublisher, error) {
	format, err := adapter.ParseSummaryFormat(viper.GetString(summaryFormatConfigKey))
	if err != nil {
		return nil, err
	}

	if path := viper.GetString(summaryFileConfigKey); path != "" {
		return adapter.NewFilePublisher(m.Path(path), format), nil
	}

	return adapter.NewWriterPublisher(cmd.OutOrStdout(), format), nil
}
