package calibration

import "github.com/harrison/trebuchet/internal/matcher"

// LineScanner finds the first and last digit of a line.
// It owns its matcher, so separate scanners never share progress.
type LineScanner struct {
	m *matcher.Matcher
}

// NewLineScanner creates a LineScanner recognising digits in the given mode.
func NewLineScanner(mode matcher.Mode) *LineScanner {
	return &LineScanner{m: matcher.New(mode)}
}

// Scan feeds line to the matcher byte by byte. ok is false when the line
// holds no digit. The matcher is reset before returning.
func (s *LineScanner) Scan(line string) (first, last uint8, ok bool) {
	for i := 0; i < len(line); i++ {
		d, found := s.m.Feed(line[i])
		if !found {
			continue
		}
		if !ok {
			first = d
			ok = true
		}
		last = d
	}
	s.m.Feed(matcher.Sentinel)
	return first, last, ok
}
