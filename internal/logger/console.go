// Package logger provides logging implementations for trebuchet runs.
//
// The logger package reports calibration progress at the line and summary
// levels. Implementations are thread-safe and support various output
// destinations (console, file).
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/trebuchet/internal/calibration"
	"github.com/harrison/trebuchet/internal/display"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs calibration progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is enabled only when the writer is a terminal.
// There is no LogError: fatal errors reach the console once, through main.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		mutex:       sync.Mutex{},
		colorOutput: display.IsColorWriter(writer),
	}
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}

	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
// Format: "[HH:MM:SS] [LEVEL] <message>"
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	levelText := level
	if cl.colorOutput {
		levelText = levelColor(level).Sprint(level)
	}

	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), levelText, message)
}

// levelColor picks the color used for a level tag.
func levelColor(level string) *color.Color {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "INFO":
		return color.New(color.FgBlue)
	case "WARN":
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}

// LogLine logs the digits found in a line at DEBUG level.
// Format: "[HH:MM:SS] [DEBUG] <first><last> <- [<length>]: <line>"
func (cl *ConsoleLogger) LogLine(result calibration.LineResult) {
	if cl.writer == nil || !cl.shouldLog("debug") {
		return
	}

	value := fmt.Sprintf("%d%d", result.First, result.Last)
	if cl.colorOutput {
		value = color.New(color.FgGreen).Sprint(value)
	}
	cl.logWithLevel("DEBUG", fmt.Sprintf("%s <- [%d]: %s", value, len(result.Text), result.Text))
}

// LogSkipped logs a line without digits at INFO level.
func (cl *ConsoleLogger) LogSkipped(result calibration.LineResult) {
	cl.logWithLevel("INFO", skippedMessage(result))
}

// LogSummary logs the totals of a run at INFO level.
func (cl *ConsoleLogger) LogSummary(summary calibration.Summary) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	message := summaryMessage(summary)
	if cl.colorOutput {
		message = color.New(color.Bold).Sprint(message)
	}
	cl.logWithLevel("INFO", message)
}

// skippedMessage describes a digit-less line for both loggers.
func skippedMessage(result calibration.LineResult) string {
	if result.Carried {
		return fmt.Sprintf("Line %d has no digit, carrying %d%d", result.Number, result.First, result.Last)
	}
	return fmt.Sprintf("Line %d has no digit, skipped", result.Number)
}

// summaryMessage describes the totals of a run for both loggers.
func summaryMessage(summary calibration.Summary) string {
	lineLabel := "lines"
	if summary.Lines == 1 {
		lineLabel = "line"
	}
	return fmt.Sprintf("Calibrated %d %s: total %d (skipped %d, carried %d)",
		summary.Lines, lineLabel, summary.Total, summary.Skipped, summary.Carried)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}
