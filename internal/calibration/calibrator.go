// Package calibration sums calibration values over line-delimited input.
//
// Each line contributes 10*first + last, where first and last are the first
// and last digits found in the line by a matcher.Matcher. Lines without any
// digit are handled according to a NoDigitPolicy.
package calibration

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strings"

	"github.com/harrison/trebuchet/internal/matcher"
)

// NoDigitPolicy decides what a line without any digit contributes.
type NoDigitPolicy string

const (
	// PolicySkip contributes nothing and counts the line as skipped.
	PolicySkip NoDigitPolicy = "skip"
	// PolicyError aborts the run with a NoDigitError.
	PolicyError NoDigitPolicy = "error"
	// PolicyCarry reuses the digits of the previous contributing line
	// (zero before the first one).
	PolicyCarry NoDigitPolicy = "carry"
)

// ParseNoDigitPolicy validates a policy name.
func ParseNoDigitPolicy(s string) (NoDigitPolicy, error) {
	switch p := NoDigitPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicySkip, PolicyError, PolicyCarry:
		return p, nil
	default:
		return "", fmt.Errorf("invalid no-digit policy %q, must be one of: skip, error, carry", s)
	}
}

// LineResult is the outcome of scanning one input line.
type LineResult struct {
	Number  int    // 1-based line number
	Text    string // Line without its terminator
	First   uint8
	Last    uint8
	Found   bool // false when the line holds no digit
	Carried bool // digits were taken from an earlier line
}

// Value returns the two-digit calibration value of the line.
func (r LineResult) Value() uint64 {
	return 10*uint64(r.First) + uint64(r.Last)
}

// Summary holds the totals of a calibration run.
type Summary struct {
	Total        uint64
	Lines        int
	Skipped      int
	Carried      int
	NoDigitLines []int // line numbers of digit-less lines
}

// Logger receives calibration progress events.
type Logger interface {
	LogLine(result LineResult)
	LogSkipped(result LineResult)
	LogSummary(summary Summary)
}

type noopLogger struct{}

func (noopLogger) LogLine(LineResult)    {}
func (noopLogger) LogSkipped(LineResult) {}
func (noopLogger) LogSummary(Summary)    {}

// Options configures a Calibrator.
type Options struct {
	Mode   matcher.Mode
	Policy NoDigitPolicy // empty means PolicySkip
	Logger Logger        // nil discards events
}

// Calibrator drives the line scanner over an input and accumulates the sum.
type Calibrator struct {
	mode   matcher.Mode
	policy NoDigitPolicy
	logger Logger
}

// New creates a Calibrator from the given options.
func New(opts Options) *Calibrator {
	policy := opts.Policy
	if policy == "" {
		policy = PolicySkip
	}
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	return &Calibrator{
		mode:   opts.Mode,
		policy: policy,
		logger: logger,
	}
}

// CalibrateFile opens path, calibrates its contents and closes it.
// An open failure is returned as *FileOpenError before any line is read.
func (c *Calibrator) CalibrateFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	return c.Calibrate(f)
}

// Calibrate reads r line by line, including a final line without a newline,
// and returns the accumulated summary. Every call starts from a fresh scanner.
func (c *Calibrator) Calibrate(r io.Reader) (*Summary, error) {
	scanner := NewLineScanner(c.mode)
	reader := bufio.NewReader(r)
	summary := &Summary{}

	var prevFirst, prevLast uint8
	for lineNo := 1; ; lineNo++ {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, &ReadError{Line: lineNo, Err: readErr}
		}
		if raw == "" && readErr == io.EOF {
			break
		}

		text := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		result := LineResult{Number: lineNo, Text: text}
		result.First, result.Last, result.Found = scanner.Scan(text)
		summary.Lines++

		contributes := true
		if !result.Found {
			summary.NoDigitLines = append(summary.NoDigitLines, lineNo)
			switch c.policy {
			case PolicyError:
				return nil, &NoDigitError{Line: lineNo, Text: text}
			case PolicyCarry:
				result.First, result.Last = prevFirst, prevLast
				result.Carried = true
				summary.Carried++
			default:
				summary.Skipped++
				contributes = false
			}
			c.logger.LogSkipped(result)
		}

		if contributes {
			prevFirst, prevLast = result.First, result.Last
			total, err := accumulate(summary.Total, result.Value(), lineNo)
			if err != nil {
				return nil, err
			}
			summary.Total = total
			c.logger.LogLine(result)
		}

		if readErr == io.EOF {
			break
		}
	}

	c.logger.LogSummary(*summary)
	return summary, nil
}

// accumulate adds value to total, failing instead of wrapping around.
func accumulate(total, value uint64, line int) (uint64, error) {
	sum, carry := bits.Add64(total, value, 0)
	if carry != 0 {
		return total, &OverflowError{Line: line, Total: total, Value: value}
	}
	return sum, nil
}
