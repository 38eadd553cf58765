// Package report writes a YAML record of a calibration run.
package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harrison/trebuchet/internal/calibration"
	"github.com/harrison/trebuchet/internal/filelock"
	"github.com/harrison/trebuchet/internal/matcher"
)

// Report is the persisted outcome of one run.
type Report struct {
	RunID        string    `yaml:"run_id"`
	Input        string    `yaml:"input"`
	Mode         string    `yaml:"mode"`
	Policy       string    `yaml:"policy"`
	Total        uint64    `yaml:"total"`
	Lines        int       `yaml:"lines"`
	Skipped      int       `yaml:"skipped"`
	Carried      int       `yaml:"carried"`
	NoDigitLines []int     `yaml:"no_digit_lines,omitempty"`
	GeneratedAt  time.Time `yaml:"generated_at"`
}

// NewRunID returns a fresh identifier shared by the run log and the report.
func NewRunID() string {
	return uuid.NewString()
}

// New builds a report from a finished run.
func New(runID, input string, mode matcher.Mode, policy calibration.NoDigitPolicy, summary calibration.Summary) *Report {
	return &Report{
		RunID:        runID,
		Input:        input,
		Mode:         mode.String(),
		Policy:       string(policy),
		Total:        summary.Total,
		Lines:        summary.Lines,
		Skipped:      summary.Skipped,
		Carried:      summary.Carried,
		NoDigitLines: summary.NoDigitLines,
		GeneratedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

// Write stores the report at path, holding "<path>.lock" for the duration.
func (r *Report) Write(ctx context.Context, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := filelock.LockAndWrite(ctx, path, data); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// Load reads a report previously written by Write.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		return nil, fmt.Errorf("report %s has invalid run_id %q: %w", path, r.RunID, err)
	}
	if _, err := matcher.ParseMode(r.Mode); err != nil {
		return nil, fmt.Errorf("report %s: %w", path, err)
	}
	if _, err := calibration.ParseNoDigitPolicy(r.Policy); err != nil {
		return nil, fmt.Errorf("report %s: %w", path, err)
	}
	return &r, nil
}
