// Package display formats user-facing output for the trebuchet CLI.
//
// The calibration result goes to stdout through PrintSum. Everything else a
// user should notice, such as lines that held no digit, is rendered as a
// Warning on stderr:
//
//	warning := display.WarnNoDigitLines(summary, policy)
//	warning.Colored = display.IsColorWriter(os.Stderr)
//	warning.Display(os.Stderr)
//
// Colour is applied with fatih/color and only when the destination is a
// terminal. All functions accept io.Writer for testability.
package display
