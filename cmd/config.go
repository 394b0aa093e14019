package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "covdelta"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	nameFlagName          = "name"
	lcovFileFlagName      = "lcov-file"
	lcovBaseFlagName      = "lcov-base"
	minCoverageFlagName   = "minimum-coverage"
	precisionFlagName     = "precision"
	summaryFileFlagName   = "summary-file"
	summaryFormatFlagName = "summary-format"
	logFileFlagName       = "log-file"
	verboseFlagName       = "verbose"

	nameConfigKey          = "report.name"
	lcovFileConfigKey      = "report.lcov_file"
	lcovBaseConfigKey      = "report.lcov_base"
	minCoverageConfigKey   = "report.minimum_coverage"
	precisionConfigKey     = "report.precision"
	summaryFileConfigKey   = "report.summary_file"
	summaryFormatConfigKey = "report.summary_format"

	defaultLcovFile      = "./coverage/lcov.info"
	defaultMinCoverage   = 0.0
	defaultPrecision     = 2
	defaultSummaryFormat = "markdown"

	envPrefix = "COVDELTA"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".covdelta.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// actionInputs maps config keys to the GitHub Actions inputs that may feed
// them through INPUT_* environment variables.
var actionInputs = map[string]string{
	nameConfigKey:        "name",
	lcovFileConfigKey:    "lcov-file",
	lcovBaseConfigKey:    "lcov-base",
	minCoverageConfigKey: "minimum-coverage-percentage",
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(nameConfigKey, "")
	viper.SetDefault(lcovFileConfigKey, defaultLcovFile)
	viper.SetDefault(lcovBaseConfigKey, "")
	viper.SetDefault(minCoverageConfigKey, defaultMinCoverage)
	viper.SetDefault(precisionConfigKey, defaultPrecision)
	viper.SetDefault(summaryFileConfigKey, "")
	viper.SetDefault(summaryFormatConfigKey, defaultSummaryFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	bindEnvironment()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("failed to read config file", "error", err)
	}
}

// bindEnvironment lets COVDELTA_* variables and GitHub Actions inputs feed
// the report keys. The summary file falls back to GITHUB_STEP_SUMMARY.
func bindEnvironment() {
	for key, input := range actionInputs {
		_ = viper.BindEnv(key, envName(key), "INPUT_"+strings.ToUpper(input))
	}

	_ = viper.BindEnv(summaryFileConfigKey, envName(summaryFileConfigKey), "GITHUB_STEP_SUMMARY")
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger writing to a rotating file.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
