package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/trebuchet/internal/calibration"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		message      string
		shouldAppear bool
	}{
		// trace level - should see everything
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", message: "trace msg", shouldAppear: true},
		{name: "trace sees debug", logLevel: "trace", messageLevel: "debug", message: "debug msg", shouldAppear: true},
		{name: "trace sees info", logLevel: "trace", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "trace sees warn", logLevel: "trace", messageLevel: "warn", message: "warn msg", shouldAppear: true},

		// debug level - should not see trace
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", message: "debug msg", shouldAppear: true},
		{name: "debug sees info", logLevel: "debug", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "debug sees warn", logLevel: "debug", messageLevel: "warn", message: "warn msg", shouldAppear: true},

		// info level - should not see trace/debug
		{name: "info blocks trace", logLevel: "info", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "info sees warn", logLevel: "info", messageLevel: "warn", message: "warn msg", shouldAppear: true},

		// warn level - should only see warn/error
		{name: "warn blocks trace", logLevel: "warn", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "warn blocks debug", logLevel: "warn", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", message: "info msg", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", message: "warn msg", shouldAppear: true},

		// error level - console has nothing above warn
		{name: "error blocks trace", logLevel: "error", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "error blocks debug", logLevel: "error", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "error blocks info", logLevel: "error", messageLevel: "info", message: "info msg", shouldAppear: false},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", message: "warn msg", shouldAppear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			// Log message at specified level
			switch tt.messageLevel {
			case "trace":
				logger.LogTrace(tt.message)
			case "debug":
				logger.LogDebug(tt.message)
			case "info":
				logger.LogInfo(tt.message)
			case "warn":
				logger.LogWarn(tt.message)
			}

			output := buf.String()
			contains := strings.Contains(output, tt.message)

			if tt.shouldAppear && !contains {
				t.Errorf("Expected message %q to appear in output, but it didn't. Output: %q", tt.message, output)
			}
			if !tt.shouldAppear && contains {
				t.Errorf("Expected message %q NOT to appear in output, but it did. Output: %q", tt.message, output)
			}
		})
	}
}

// TestLogLevelEdgeCases verifies level normalization
func TestLogLevelEdgeCases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "info"},
		{input: "DEBUG", want: "debug"},
		{input: "  warn  ", want: "warn"},
		{input: "verbose", want: "info"},
		{input: "Trace", want: "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeLogLevel(tt.input); got != tt.want {
				t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestCalibrationEventsRespectLogLevel verifies line, skip and summary events are filtered
func TestCalibrationEventsRespectLogLevel(t *testing.T) {
	line := calibration.LineResult{Number: 1, Text: "two1nine", First: 2, Last: 9, Found: true}
	skipped := calibration.LineResult{Number: 2, Text: "abc"}
	summary := calibration.Summary{Total: 29, Lines: 2, Skipped: 1}

	tests := []struct {
		level       string
		wantLine    bool
		wantSkipped bool
		wantSummary bool
	}{
		{level: "trace", wantLine: true, wantSkipped: true, wantSummary: true},
		{level: "debug", wantLine: true, wantSkipped: true, wantSummary: true},
		{level: "info", wantLine: false, wantSkipped: true, wantSummary: true},
		{level: "warn", wantLine: false, wantSkipped: false, wantSummary: false},
		{level: "error", wantLine: false, wantSkipped: false, wantSummary: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.level)

			logger.LogLine(line)
			logger.LogSkipped(skipped)
			logger.LogSummary(summary)

			output := buf.String()
			if got := strings.Contains(output, "29 <- [8]: two1nine"); got != tt.wantLine {
				t.Errorf("line event present = %v, want %v. Output: %q", got, tt.wantLine, output)
			}
			if got := strings.Contains(output, "Line 2 has no digit"); got != tt.wantSkipped {
				t.Errorf("skip event present = %v, want %v. Output: %q", got, tt.wantSkipped, output)
			}
			if got := strings.Contains(output, "Calibrated 2 lines"); got != tt.wantSummary {
				t.Errorf("summary event present = %v, want %v. Output: %q", got, tt.wantSummary, output)
			}
		})
	}
}

// TestFileLoggerWithLogLevel verifies FileLogger respects log level
func TestFileLoggerWithLogLevel(t *testing.T) {
	logDir := t.TempDir()
	logger, err := NewFileLogger(logDir, "warn", "run-1")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.LogDebug("debug message")
	logger.LogInfo("info message")
	logger.LogWarn("warn message")
	logger.LogError("error message")
	logger.LogLine(calibration.LineResult{Number: 1, Text: "12", First: 1, Last: 2, Found: true})
	logger.Close()

	content, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	output := string(content)

	for _, unwanted := range []string{"debug message", "info message", "12 <- [2]"} {
		if strings.Contains(output, unwanted) {
			t.Errorf("did not expect %q in output: %q", unwanted, output)
		}
	}
	for _, wanted := range []string{"[WARN] warn message", "[ERROR] error message"} {
		if !strings.Contains(output, wanted) {
			t.Errorf("expected %q in output: %q", wanted, output)
		}
	}
}
