package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "covdelta", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup(logFileFlagName))
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("v"))
}

func TestRegisteredCommands_FlagDefaults(t *testing.T) {
	assert.Equal(t, defaultLogFilename, rootCmd.PersistentFlags().Lookup(logFileFlagName).DefValue)
	assert.Equal(t, defaultLcovFile, reportCmd.Flags().Lookup(lcovFileFlagName).DefValue)
	assert.Equal(t, "2", reportCmd.Flags().Lookup(precisionFlagName).DefValue)
	assert.Equal(t, defaultSummaryFormat, reportCmd.Flags().Lookup(summaryFormatFlagName).DefValue)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "LCOV tracefile format")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "report")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "version")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, reportSource)
	assert.NotNil(t, contextProvider)
	assert.NotNil(t, renderer)
	assert.NotNil(t, newWorkflow)
}

func TestDefaultWorkflow(t *testing.T) {
	assert.NotNil(t, defaultWorkflow(newReportCmd(), nil))
}

func TestBindFlagToConfig_MissingFlag(t *testing.T) {
	if os.Getenv("TEST_BIND_MISSING_FLAG") == "1" {
		bindFlagToConfig(nil, "report.missing")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestBindFlagToConfig_MissingFlag")
	cmd.Env = append(os.Environ(), "TEST_BIND_MISSING_FLAG=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, string(output), `flag for config key "report.missing" not found`)
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
