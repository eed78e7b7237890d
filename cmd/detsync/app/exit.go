package app

import (
	"fmt"
	"os"

	"github.com/blueteamops/detsync/pkg/errors"
)

// Process exit codes. Missing mandatory configuration gets its own code
// so schedulers can tell a misconfigured job from a failed run.
const (
	ExitCodeError  = 1
	ExitCodeConfig = 2
)

// ExitOnError prints the error and exits with the appropriate code.
// A nil error is a no-op.
func ExitOnError(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	if errors.IsPrecondition(err) {
		os.Exit(ExitCodeConfig)
	}
	os.Exit(ExitCodeError)
}
