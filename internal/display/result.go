package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// PrintSum writes the final calibration total in its fixed format.
func PrintSum(w io.Writer, total uint64) error {
	_, err := fmt.Fprintf(w, "Sum of calibration values: %d\n", total)
	return err
}

// IsColorWriter reports whether w is a terminal that should receive colour.
func IsColorWriter(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
