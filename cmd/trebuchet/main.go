package main

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/trebuchet/internal/cmd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and maps its outcome to an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if cmd.IsInvalidArguments(err) {
			fmt.Fprint(stderr, rootCmd.UsageString())
		}
		return 1
	}
	return 0
}
