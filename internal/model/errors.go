package model

import "errors"

var (
	// ErrMissingBuildFile is returned when the project has no build description file.
	ErrMissingBuildFile = errors.New("build description missing")
	// ErrSubprocessFailed is returned when the build tool subprocess fails.
	ErrSubprocessFailed = errors.New("build tool failed")
	// ErrWriteFailed is returned when a generated document could not be written.
	ErrWriteFailed = errors.New("write failed")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
)
