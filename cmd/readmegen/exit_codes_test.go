package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	readmegen "github.com/alnah/go-readmegen"
	"github.com/alnah/go-readmegen/internal/config"
	"github.com/alnah/go-readmegen/internal/generate"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "generator failure", err: generate.ErrGeneratorFailed, want: ExitGenerator},
		{name: "empty generator output", err: generate.ErrEmptyOutput, want: ExitGenerator},
		{name: "wrapped generator failure", err: fmt.Errorf("step 1: %w", generate.ErrGeneratorFailed), want: ExitGenerator},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "artifact write failure", err: readmegen.ErrWriteArtifact, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid config field", err: config.ErrInvalidField, want: ExitUsage},
		{name: "invalid assembler config", err: readmegen.ErrInvalidConfig, want: ExitUsage},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
