package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ytgrab/ytgrab/internal/errs"
)

// Exit codes per failure kind. Anything unclassified exits 1.
const (
	exitOK                = 0
	exitFailure           = 1
	exitUnsupportedSource = 2
	exitMissingDependency = 3
	exitTransport         = 4
	exitStorage           = 5
)

// ExitCode maps an error from the download pipeline to the process exit
// code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch errs.KindOf(err) {
	case errs.KindUnsupportedSource:
		return exitUnsupportedSource
	case errs.KindMissingDependency:
		return exitMissingDependency
	case errs.KindTransport:
		return exitTransport
	case errs.KindStorage:
		return exitStorage
	default:
		return exitFailure
	}
}

// Execute runs the root command and terminates the process with the
// mapped exit code. This is the single reporting boundary: every
// pipeline failure surfaces here as one line on stderr.
func Execute(version string) {
	cmd := NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(ExitCode(err))
	}
}
