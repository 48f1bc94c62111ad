package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Command completed
	ExitInvalid = 1 // validate found invalid files
	ExitError   = 2 // Configuration or runtime error
)

// ValidationError indicates that validate ran to completion but one or more
// metric files were rejected.
type ValidationError struct {
	Invalid int
	Total   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d of %d file(s) invalid", e.Invalid, e.Total)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			os.Exit(ExitInvalid)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
