// Package cmd provides the root command and CLI setup for covdelta.
package cmd

import (
	"fmt"
	"os"

	"covdelta.dev/pkg/covdelta/internal/adapter"
	"covdelta.dev/pkg/covdelta/internal/controller"
	"covdelta.dev/pkg/covdelta/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var reportSource adapter.ReportSource
var contextProvider adapter.ContextProvider
var renderer controller.Renderer

// newWorkflow builds the report workflow for a command. Tests replace it.
var newWorkflow = defaultWorkflow

// logFileFlag and verboseFlag are root-level flags shared by every command.
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	reportSource = adapter.NewLocalReportSource()
	contextProvider = adapter.NewGitHubContextProvider()
	renderer = controller.NewMarkdownRenderer()
}

func defaultWorkflow(cmd *cobra.Command, publisher adapter.CheckPublisher) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	return domain.NewWorkflow(reportSource, contextProvider, publisher, renderer, ui)
}

const rootLongDescription = `covdelta compares an LCOV coverage report against a baseline report and
renders a Markdown summary with per-file and total coverage deltas.

Reports use the LCOV tracefile format (SF, DA and end_of_record records).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "covdelta",
		Short: "LCOV coverage delta reporter",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
