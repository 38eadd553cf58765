package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/trebuchet/internal/calibration"
)

// maxListedLines caps the line numbers printed in a no-digit warning.
const maxListedLines = 10

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Affected lines (optional)
	More       int      // Affected lines not listed in Items
	Suggestion string   // Action to take (optional)
	Colored    bool     // Render in yellow
}

// Display shows a formatted warning, in yellow when Colored is set
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		b.WriteString("    ")
		if len(w.Items)+w.More == 1 {
			b.WriteString("Affected line:\n")
		} else {
			b.WriteString("Affected lines:\n")
		}

		for _, item := range w.Items {
			b.WriteString("      ")
			b.WriteString(item)
			b.WriteString("\n")
		}
		if w.More > 0 {
			fmt.Fprintf(&b, "      ... and %d more\n", w.More)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	c := color.New(color.FgYellow)
	if w.Colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprint(out, c.Sprint(b.String()))
}

// WarnNoDigitLines creates a warning for lines that held no digit.
// The returned Warning has an empty Title when there is nothing to report.
func WarnNoDigitLines(summary calibration.Summary, policy calibration.NoDigitPolicy) Warning {
	count := len(summary.NoDigitLines)
	if count == 0 {
		return Warning{}
	}

	noun := "lines"
	if count == 1 {
		noun = "line"
	}

	w := Warning{Title: fmt.Sprintf("%d %s without digits", count, noun)}
	switch policy {
	case calibration.PolicyCarry:
		w.Message = "Digits from the previous line were reused"
	default:
		w.Message = "These lines contributed nothing to the sum"
	}

	listed := summary.NoDigitLines
	if len(listed) > maxListedLines {
		w.More = len(listed) - maxListedLines
		listed = listed[:maxListedLines]
	}
	for _, n := range listed {
		w.Items = append(w.Items, fmt.Sprintf("line %d", n))
	}

	w.Suggestion = "Use --no-digit error to reject input with digit-less lines"
	return w
}
