package util

import (
	"fmt"
)

// Exit codes for the fatal failure classes, so scripted callers can tell a
// bad capture file apart from an incomplete curation pass or a failed
// inference call.
const (
	ExitCodeBadCapture         = 2
	ExitCodeIncompleteCuration = 3
	ExitCodeInferenceFailure   = 4
)

type ExitError struct {
	ExitCode int
	Err      error
}

func (ee ExitError) Error() string {
	return fmt.Sprintf("exit with code %d: %v", ee.ExitCode, ee.Err)
}
