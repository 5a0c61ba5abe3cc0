package main

import (
	"errors"
	"os"

	readmegen "github.com/alnah/go-readmegen"
	"github.com/alnah/go-readmegen/internal/config"
	"github.com/alnah/go-readmegen/internal/generate"
)

// Exit codes for the readmegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful assembly (including graceful coverage-report-missing exit)
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags or config
	ExitIO        = 3 // File not found, permission denied, artifact write failure
	ExitGenerator = 4 // External readme generator failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Generator errors (exit 4)
	if errors.Is(err, generate.ErrGeneratorFailed) ||
		errors.Is(err, generate.ErrEmptyOutput) {
		return ExitGenerator
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, readmegen.ErrWriteArtifact) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, readmegen.ErrInvalidConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
