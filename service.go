package readmegen

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-readmegen/internal/coverage"
	"github.com/alnah/go-readmegen/internal/fileutil"
	"github.com/alnah/go-readmegen/internal/generate"
	"github.com/alnah/go-readmegen/internal/placeholder"
	"github.com/alnah/go-readmegen/internal/preview"
)

// Service orchestrates README assembly: base document generation, coverage
// table rendering, placeholder substitution, and artifact persistence.
type Service struct {
	cfg       Config
	generator generate.Generator
	resolver  *placeholder.Resolver
	preview   *preview.Renderer
	log       Logger
}

// WithGenerator replaces the external readme generator (e.g., by tests).
func WithGenerator(g generate.Generator) Option {
	return func(s *Service) {
		s.generator = g
	}
}

// New creates a Service for the given configuration.
func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg: cfg,
		log: func(string, ...any) {},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.generator == nil {
		s.generator = &generate.CargoReadme{
			Runner:  &generate.ExecRunner{},
			Command: cfg.GeneratorCommand,
		}
	}

	s.resolver = &placeholder.Resolver{
		Generator:  s.generator,
		SourceExts: cfg.SourceExtensions,
		Log:        placeholder.Logger(s.log),
	}

	if cfg.HTMLPreview {
		s.preview = preview.NewRenderer()
	}

	return s, nil
}

// Assemble runs the full pipeline:
//
//  1. Generate the base document (fatal on failure or empty output).
//  2. Persist it as the README draft so a partial result survives later failures.
//  3. If the coverage report is absent, stop there: the draft is the final
//     artifact and the run still succeeds.
//  4. Render the coverage table, substitute the status marker, resolve docs
//     references, and persist the final README plus the test-status artifact.
//  5. Optionally render an HTML preview of the final README.
func (s *Service) Assemble(ctx context.Context) (Result, error) {
	doc, err := s.generator.Generate(ctx, generate.Options{})
	if err != nil {
		return Result{}, err
	}

	if err := writeArtifact(s.cfg.ReadmePath, doc); err != nil {
		return Result{}, err
	}

	res := Result{ReadmePath: s.cfg.ReadmePath}

	if !fileutil.FileExists(s.cfg.CoverageReportPath) {
		s.log("coverage report not found: %s", s.cfg.CoverageReportPath)
		return res, nil
	}
	res.CoverageFound = true

	records, diags := coverage.ParseReportFile(s.cfg.CoverageReportPath)
	if diags != nil {
		// Malformed rows were dropped; the valid ones still render.
		s.log("coverage report: %v", diags)
	}
	table := coverage.RenderTable(records)
	res.Records = len(records)

	doc = placeholder.ReplaceMarker(doc, s.cfg.StatusMarker, table)
	doc = s.resolver.Resolve(ctx, doc)

	if err := writeArtifact(s.cfg.ReadmePath, doc); err != nil {
		return Result{}, err
	}
	if err := writeArtifact(s.cfg.TestStatusPath, table); err != nil {
		return Result{}, err
	}
	res.TestStatusPath = s.cfg.TestStatusPath

	if s.preview != nil {
		htmlDoc, err := s.preview.Render(ctx, doc)
		if err != nil {
			s.log("HTML preview skipped: %v", err)
			return res, nil
		}
		if err := writeArtifact(s.cfg.PreviewPath, htmlDoc); err != nil {
			return Result{}, err
		}
		res.PreviewPath = s.cfg.PreviewPath
	}

	return res, nil
}

// writeArtifact persists one output file as a full overwrite.
func writeArtifact(path, content string) error {
	// #nosec G306 -- artifacts are documentation meant to be world-readable
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteArtifact, path, err)
	}
	return nil
}
