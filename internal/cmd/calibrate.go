package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/trebuchet/internal/calibration"
	"github.com/harrison/trebuchet/internal/config"
	"github.com/harrison/trebuchet/internal/display"
	"github.com/harrison/trebuchet/internal/logger"
	"github.com/harrison/trebuchet/internal/matcher"
	"github.com/harrison/trebuchet/internal/report"
)

// reportLockTimeout bounds the wait for another run holding the report lock.
var reportLockTimeout = 10 * time.Second

// runLogger is the set of events both console and file loggers accept.
type runLogger interface {
	calibration.Logger
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
}

// runCalibrate implements the root command logic
func runCalibrate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runID := report.NewRunID()
	stderr := cmd.ErrOrStderr()

	consoleLog := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	multiLog := &multiLogger{loggers: []runLogger{consoleLog}}

	var fileLog *logger.FileLogger
	if cfg.LogDir != "" {
		fileLog, err = logger.NewFileLogger(cfg.LogDir, cfg.LogLevel, runID)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		multiLog.loggers = append(multiLog.loggers, fileLog)
	}

	// The console is left to main; only the run log records the failure.
	fail := func(err error) error {
		if fileLog != nil {
			fileLog.LogError(err.Error())
		}
		return err
	}

	multiLog.LogTrace(fmt.Sprintf("Config: log_level=%s spelled_words=%t no_digit_policy=%s report_path=%q",
		cfg.LogLevel, cfg.SpelledWords, cfg.NoDigitPolicy, cfg.ReportPath))

	mode := matcher.ModeWords
	if !cfg.SpelledWords {
		mode = matcher.ModeNumerals
	}
	policy := cfg.Policy()

	calibrator := calibration.New(calibration.Options{
		Mode:   mode,
		Policy: policy,
		Logger: multiLog,
	})

	multiLog.LogDebug(fmt.Sprintf("Input: %s (mode %s, policy %s)", inputPath, mode, policy))
	summary, err := calibrator.CalibrateFile(inputPath)
	if err != nil {
		return fail(err)
	}

	if summary.Lines == 0 {
		multiLog.LogWarn(fmt.Sprintf("Input %s is empty", inputPath))
	}

	if warning := display.WarnNoDigitLines(*summary, policy); warning.Title != "" {
		warning.Colored = display.IsColorWriter(stderr)
		warning.Display(stderr)
	}

	if cfg.ReportPath != "" {
		multiLog.LogDebug(fmt.Sprintf("Writing report to %s", cfg.ReportPath))
		ctx, cancel := context.WithTimeout(cmd.Context(), reportLockTimeout)
		defer cancel()

		r := report.New(runID, inputPath, mode, policy, *summary)
		if err := r.Write(ctx, cfg.ReportPath); err != nil {
			return fail(err)
		}
		multiLog.LogInfo(fmt.Sprintf("Report written to %s", cfg.ReportPath))
	}

	if fileLog != nil {
		consoleLog.LogInfo(fmt.Sprintf("Run log written to %s", fileLog.RunFile()))
	}

	return display.PrintSum(cmd.OutOrStdout(), summary.Total)
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr, logDirPtr, policyPtr, reportPtr *string
	var spelledPtr *bool

	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	} else if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel := "debug"
		logLevelPtr = &logLevel
	}
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}
	if cmd.Flags().Changed("numerals-only") {
		numeralsOnly, _ := cmd.Flags().GetBool("numerals-only")
		spelled := !numeralsOnly
		spelledPtr = &spelled
	}
	if cmd.Flags().Changed("no-digit") {
		policy, _ := cmd.Flags().GetString("no-digit")
		policyPtr = &policy
	}
	if cmd.Flags().Changed("report") {
		reportPath, _ := cmd.Flags().GetString("report")
		reportPtr = &reportPath
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr, spelledPtr, policyPtr, reportPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// multiLogger implements calibration.Logger by delegating to multiple loggers
type multiLogger struct {
	loggers []runLogger
}

// LogLine forwards to all loggers
func (ml *multiLogger) LogLine(result calibration.LineResult) {
	for _, l := range ml.loggers {
		l.LogLine(result)
	}
}

// LogSkipped forwards to all loggers
func (ml *multiLogger) LogSkipped(result calibration.LineResult) {
	for _, l := range ml.loggers {
		l.LogSkipped(result)
	}
}

// LogSummary forwards to all loggers
func (ml *multiLogger) LogSummary(summary calibration.Summary) {
	for _, l := range ml.loggers {
		l.LogSummary(summary)
	}
}

// LogTrace forwards to all loggers
func (ml *multiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards to all loggers
func (ml *multiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *multiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *multiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}
