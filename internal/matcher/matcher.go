// Package matcher recognises digits in a byte stream.
//
// A Matcher is fed one byte at a time and reports a digit whenever the byte is
// a numeral ('0'-'9') or completes one of the spelled-out words "zero" through
// "nine". Partially matched words are tracked by per-word progress indices, so
// overlapping words such as "eightwo" yield both 8 and 2.
package matcher

import "fmt"

// Sentinel marks the end of a line. Feeding it resets all word progress.
const Sentinel byte = 0

// Words holds the spelled-out digits, indexed by their value.
var Words = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// Mode selects which digit spellings a Matcher recognises.
type Mode int

const (
	// ModeWords recognises numerals and spelled-out words.
	ModeWords Mode = iota
	// ModeNumerals recognises numerals only.
	ModeNumerals
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeNumerals:
		return "numerals"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "words":
		return ModeWords, nil
	case "numerals":
		return ModeNumerals, nil
	default:
		return ModeWords, fmt.Errorf("unknown matcher mode %q", s)
	}
}

// Matcher is a streaming digit recogniser. The zero value is not usable; use New.
// A Matcher is not safe for concurrent use.
type Matcher struct {
	mode     Mode
	progress [len(Words)]int
}

// New creates a Matcher in the given mode with all progress cleared.
func New(mode Mode) *Matcher {
	return &Matcher{mode: mode}
}

// Mode returns the mode the matcher was created with.
func (m *Matcher) Mode() Mode {
	return m.mode
}

// Reset clears the progress of every word.
func (m *Matcher) Reset() {
	for i := range m.progress {
		m.progress[i] = 0
	}
}

// Progress returns how many leading bytes of Words[i] are currently matched.
func (m *Matcher) Progress(i int) int {
	return m.progress[i]
}

// Feed consumes one byte and reports whether it completes a digit.
func (m *Matcher) Feed(c byte) (digit uint8, ok bool) {
	switch {
	case c == Sentinel:
		m.Reset()
		return 0, false
	case c >= '0' && c <= '9':
		// Words cannot continue across a numeral.
		m.Reset()
		return c - '0', true
	case m.mode == ModeNumerals:
		return 0, false
	}

	for i, word := range Words {
		// A mismatch gets one more try against the first byte of the word,
		// so a new word can start where another one broke off.
		for attempt := 0; attempt < 2; attempt++ {
			if c != word[m.progress[i]] {
				m.progress[i] = 0
				continue
			}
			m.progress[i]++
			if m.progress[i] < len(word) {
				break
			}
			digit, ok = uint8(i), true
			m.progress[i] = 0
		}
	}

	return digit, ok
}
