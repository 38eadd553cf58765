package logger

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/harrison/trebuchet/internal/calibration"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected color output to be disabled for a buffer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		if logger.writer != nil {
			t.Error("expected nil writer")
		}
	})

	t.Run("with regular file", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "console-*.log")
		if err != nil {
			t.Fatalf("failed to create temp file: %v", err)
		}
		defer f.Close()

		logger := NewConsoleLogger(f, "info")
		if logger.colorOutput {
			t.Error("expected color output to be disabled for a regular file")
		}
	})
}

// TestLogLine verifies per-line trace messages are formatted correctly.
func TestLogLine(t *testing.T) {
	tests := []struct {
		name         string
		result       calibration.LineResult
		expectedText string
	}{
		{
			name:         "words",
			result:       calibration.LineResult{Number: 1, Text: "two1nine", First: 2, Last: 9, Found: true},
			expectedText: "[DEBUG] 29 <- [8]: two1nine",
		},
		{
			name:         "single digit",
			result:       calibration.LineResult{Number: 4, Text: "treb7uchet", First: 7, Last: 7, Found: true},
			expectedText: "[DEBUG] 77 <- [10]: treb7uchet",
		},
		{
			name:         "zero first digit",
			result:       calibration.LineResult{Number: 2, Text: "zero5", First: 0, Last: 5, Found: true},
			expectedText: "[DEBUG] 05 <- [5]: zero5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, "debug")
			logger.LogLine(tt.result)

			output := buf.String()
			if !strings.Contains(output, tt.expectedText) {
				t.Errorf("expected %q in output, got %q", tt.expectedText, output)
			}
			if !strings.HasPrefix(output, "[") || !strings.HasSuffix(output, "\n") {
				t.Errorf("expected timestamped line, got %q", output)
			}
		})
	}
}

// TestLogSkipped verifies skip and carry messages.
func TestLogSkipped(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogSkipped(calibration.LineResult{Number: 3, Text: "abc"})
	logger.LogSkipped(calibration.LineResult{Number: 5, Text: "", First: 3, Last: 4, Carried: true})

	output := buf.String()
	if !strings.Contains(output, "[INFO] Line 3 has no digit, skipped") {
		t.Errorf("expected skip message, got %q", output)
	}
	if !strings.Contains(output, "[INFO] Line 5 has no digit, carrying 34") {
		t.Errorf("expected carry message, got %q", output)
	}
}

// TestLogSummary verifies summary messages.
func TestLogSummary(t *testing.T) {
	tests := []struct {
		name         string
		summary      calibration.Summary
		expectedText string
	}{
		{
			name:         "plural",
			summary:      calibration.Summary{Total: 142, Lines: 4},
			expectedText: "Calibrated 4 lines: total 142 (skipped 0, carried 0)",
		},
		{
			name:         "singular",
			summary:      calibration.Summary{Total: 11, Lines: 1},
			expectedText: "Calibrated 1 line: total 11 (skipped 0, carried 0)",
		},
		{
			name:         "with skipped and carried",
			summary:      calibration.Summary{Total: 209, Lines: 7, Skipped: 1, Carried: 2},
			expectedText: "Calibrated 7 lines: total 209 (skipped 1, carried 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, "info")
			logger.LogSummary(tt.summary)

			if !strings.Contains(buf.String(), tt.expectedText) {
				t.Errorf("expected %q in output, got %q", tt.expectedText, buf.String())
			}
		})
	}
}

// TestTimestampFormat verifies the HH:MM:SS timestamp format.
func TestTimestampFormat(t *testing.T) {
	ts := timestamp()

	if len(ts) != 8 {
		t.Errorf("expected timestamp length 8, got %d: %s", len(ts), ts)
	}
	if ts[2] != ':' || ts[5] != ':' {
		t.Errorf("expected colons at positions 2 and 5, got %s", ts)
	}

	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts separated by colons, got %d", len(parts))
	}
	for i, part := range parts {
		if len(part) != 2 {
			t.Errorf("expected part %d to have length 2, got %d", i, len(part))
		}
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				t.Errorf("expected digit in timestamp, got %c", ch)
			}
		}
	}
}

// TestConcurrentLogging verifies thread safety with concurrent logging.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	var successCount int32
	numGoroutines := 10
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()

			logger.LogLine(calibration.LineResult{
				Number: index,
				Text:   fmt.Sprintf("line-%d", index),
				First:  1,
				Last:   2,
				Found:  true,
			})
			logger.LogSummary(calibration.Summary{Lines: index})

			atomic.AddInt32(&successCount, 1)
		}(i)
	}

	wg.Wait()

	if successCount != int32(numGoroutines) {
		t.Errorf("expected %d successful operations, got %d", numGoroutines, successCount)
	}

	output := buf.String()
	for i := 0; i < numGoroutines; i++ {
		text := fmt.Sprintf("line-%d\n", i)
		if !strings.Contains(output, text) {
			t.Errorf("expected output to contain %q", text)
		}
	}
}

// TestNilWriter verifies that nil writer is handled gracefully.
func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")

	// These should not panic
	logger.LogTrace("trace")
	logger.LogWarn("warn")
	logger.LogLine(calibration.LineResult{Text: "1", First: 1, Last: 1, Found: true})
	logger.LogSkipped(calibration.LineResult{Number: 1})
	logger.LogSummary(calibration.Summary{})
}

// TestLoggersSatisfyInterface verifies the loggers plug into the calibrator.
func TestLoggersSatisfyInterface(t *testing.T) {
	var _ calibration.Logger = (*ConsoleLogger)(nil)
	var _ calibration.Logger = (*FileLogger)(nil)
}
