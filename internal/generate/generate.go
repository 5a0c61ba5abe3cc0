// Package generate invokes the external readme-generation tool and captures
// its output. The tool is modeled as an opaque collaborator behind the
// Generator interface so callers and tests never depend on a real subprocess.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for generator invocations.
var (
	ErrGeneratorFailed = errors.New("readme generation failed")
	ErrEmptyOutput     = errors.New("readme generator produced no output")
)

// Options scopes a generator invocation.
// The zero value requests the full project document.
type Options struct {
	InputPath string // Scope generation to a single source file (empty = whole project)
	BodyOnly  bool   // Suppress template, license, badges, and title
}

// Generator produces markdown text, or fails with an error carrying the
// tool's captured diagnostic output.
type Generator interface {
	Generate(ctx context.Context, opts Options) (string, error)
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// CargoReadme generates markdown by invoking the `cargo readme` CLI.
type CargoReadme struct {
	Runner CommandRunner
	// Command overrides the binary name (default "cargo").
	Command string
}

// NewCargoReadme creates a CargoReadme with a real command runner.
func NewCargoReadme() *CargoReadme {
	return &CargoReadme{Runner: &ExecRunner{}}
}

// Generate runs `cargo readme` and returns its standard output.
// A non-zero exit or empty output is an error; stderr is included in the
// error message for diagnosis.
func (g *CargoReadme) Generate(ctx context.Context, opts Options) (string, error) {
	command := g.Command
	if command == "" {
		command = "cargo"
	}

	args := []string{"readme"}
	if opts.InputPath != "" {
		args = append(args, "-i", opts.InputPath)
	}
	if opts.BodyOnly {
		args = append(args, "--no-template", "--no-license", "--no-badges", "--no-title")
	}

	stdout, stderr, err := g.Runner.Run(ctx, command, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrGeneratorFailed, strings.TrimSpace(stderr), err)
	}
	if strings.TrimSpace(stdout) == "" {
		return "", ErrEmptyOutput
	}

	return stdout, nil
}
