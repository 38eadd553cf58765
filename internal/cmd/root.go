package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for trebuchet
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trebuchet <input-path>",
		Short: "Sum the calibration values of a text file",
		Long: `Trebuchet reads a text file line by line, finds the first and last digit
of every line and prints the sum of the two-digit calibration values.

Digits are the numerals 0-9 and, unless --numerals-only is given, the
spelled words zero through nine. Overlapping words such as "eightwo"
yield both digits.

Configuration is loaded from .trebuchet/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  trebuchet input.txt
  trebuchet --numerals-only input.txt
  trebuchet --no-digit error input.txt      # Reject lines without digits
  trebuchet --verbose input.txt             # Trace every line on stderr
  trebuchet --log-dir ./logs input.txt      # Keep a per-run log file
  trebuchet --report run.yaml input.txt     # Write a YAML run report`,
		Args:    exactInputArg,
		RunE:    runCalibrate,
		Version: Version,
		// main prints errors and usage itself
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .trebuchet/config.yaml)")
	cmd.Flags().String("log-level", "", "Console log level: trace, debug, info, warn, error")
	cmd.Flags().Bool("verbose", false, "Trace every line (same as --log-level debug)")
	cmd.Flags().String("log-dir", "", "Directory for per-run log files")
	cmd.Flags().Bool("numerals-only", false, "Ignore spelled digit words")
	cmd.Flags().String("no-digit", "", "Policy for lines without digits: skip, error, carry")
	cmd.Flags().String("report", "", "Write a YAML run report to this path")

	return cmd
}
