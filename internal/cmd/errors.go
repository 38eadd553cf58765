package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// InvalidArgumentsError is returned when the command line does not name
// exactly one input file.
type InvalidArgumentsError struct {
	Got int
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("expected exactly one input path, got %d", e.Got)
}

// IsInvalidArguments checks whether err is an InvalidArgumentsError.
func IsInvalidArguments(err error) bool {
	var argErr *InvalidArgumentsError
	return errors.As(err, &argErr)
}

// exactInputArg accepts a single positional input path.
func exactInputArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &InvalidArgumentsError{Got: len(args)}
	}
	return nil
}
