package calibration

import (
	"errors"
	"fmt"
	"os"
)

// FileOpenError reports that the input file could not be opened.
type FileOpenError struct {
	Path string // Path as given by the caller
	Err  error  // Underlying OS error
}

// Error implements the error interface for FileOpenError.
// The message names the path and the OS reason, without repeating the path
// already carried by *os.PathError.
func (e *FileOpenError) Error() string {
	reason := e.Err
	var pathErr *os.PathError
	if errors.As(e.Err, &pathErr) {
		reason = pathErr.Err
	}
	return fmt.Sprintf("error opening file %s: %v", e.Path, reason)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure while reading input after it was opened.
type ReadError struct {
	Line int // 1-based number of the line being read
	Err  error
}

// Error implements the error interface for ReadError.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed at line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// NoDigitError reports a line without any digit under the error policy.
type NoDigitError struct {
	Line int
	Text string
}

// Error implements the error interface for NoDigitError.
func (e *NoDigitError) Error() string {
	return fmt.Sprintf("line %d contains no digit: %q", e.Line, e.Text)
}

// OverflowError reports that adding a calibration value would overflow the sum.
type OverflowError struct {
	Line  int
	Total uint64
	Value uint64
}

// Error implements the error interface for OverflowError.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("sum overflow at line %d: %d + %d exceeds uint64", e.Line, e.Total, e.Value)
}

// IsFileOpen checks if an error is a FileOpenError
func IsFileOpen(err error) bool {
	var target *FileOpenError
	return errors.As(err, &target)
}

// IsNoDigit checks if an error is a NoDigitError
func IsNoDigit(err error) bool {
	var target *NoDigitError
	return errors.As(err, &target)
}

// IsOverflow checks if an error is an OverflowError
func IsOverflow(err error) bool {
	var target *OverflowError
	return errors.As(err, &target)
}
