package readmegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for assembly operations.
var (
	ErrInvalidConfig = errors.New("invalid assembler configuration")
	ErrWriteArtifact = errors.New("failed to write artifact")
)

func errInvalid(field string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidConfig, field)
}
