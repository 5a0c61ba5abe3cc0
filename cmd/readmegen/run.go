package main

import (
	"context"
	"fmt"
	"io"

	readmegen "github.com/alnah/go-readmegen"
	"github.com/alnah/go-readmegen/internal/config"
	"github.com/alnah/go-readmegen/internal/yamlutil"
)

// run resolves configuration, builds the service, and performs one assembly.
// Precedence: built-in defaults < config file < flags.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	cfg := readmegen.DefaultConfig()

	if flags.config != "" {
		fileCfg, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		applyFileConfig(&cfg, fileCfg)
	}
	applyFlagOverrides(&cfg, flags)

	if flags.printConfig {
		return printEffectiveConfig(stdout, cfg)
	}

	logf := readmegen.Logger(func(string, ...any) {})
	if !flags.quiet {
		logf = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	svc, err := readmegen.New(cfg, readmegen.WithLogger(logf))
	if err != nil {
		return err
	}

	res, err := svc.Assemble(context.Background())
	if err != nil {
		return err
	}

	if flags.quiet {
		return nil
	}
	if !res.CoverageFound {
		fmt.Fprintf(stdout, "%s generated (coverage report missing, table skipped)\n", res.ReadmePath)
		return nil
	}
	fmt.Fprintf(stdout, "%s and %s have been generated successfully\n", res.ReadmePath, res.TestStatusPath)
	return nil
}

// applyFileConfig overlays non-zero config file values onto cfg.
func applyFileConfig(cfg *readmegen.Config, fc *config.Config) {
	if fc.CoverageReport != "" {
		cfg.CoverageReportPath = fc.CoverageReport
	}
	if fc.Readme != "" {
		cfg.ReadmePath = fc.Readme
	}
	if fc.TestStatus != "" {
		cfg.TestStatusPath = fc.TestStatus
	}
	if fc.StatusMarker != "" {
		cfg.StatusMarker = fc.StatusMarker
	}
	if len(fc.SourceExtensions) > 0 {
		cfg.SourceExtensions = fc.SourceExtensions
	}
	if fc.Generator.Command != "" {
		cfg.GeneratorCommand = fc.Generator.Command
	}
	if fc.Preview.Enabled {
		cfg.HTMLPreview = true
	}
	if fc.Preview.Output != "" {
		cfg.PreviewPath = fc.Preview.Output
	}
}

// applyFlagOverrides overlays set flags onto cfg.
func applyFlagOverrides(cfg *readmegen.Config, f *cliFlags) {
	if f.output != "" {
		cfg.ReadmePath = f.output
	}
	if f.coverageReport != "" {
		cfg.CoverageReportPath = f.coverageReport
	}
	if f.statusOutput != "" {
		cfg.TestStatusPath = f.statusOutput
	}
	if f.marker != "" {
		cfg.StatusMarker = f.marker
	}
	if f.generator != "" {
		cfg.GeneratorCommand = f.generator
	}
	if f.html {
		cfg.HTMLPreview = true
	}
	if f.htmlOutput != "" {
		cfg.HTMLPreview = true
		cfg.PreviewPath = f.htmlOutput
	}
}

// printEffectiveConfig writes the merged configuration as YAML, in the same
// shape a config file uses.
func printEffectiveConfig(w io.Writer, cfg readmegen.Config) error {
	out := config.Config{
		CoverageReport:   cfg.CoverageReportPath,
		Readme:           cfg.ReadmePath,
		TestStatus:       cfg.TestStatusPath,
		StatusMarker:     cfg.StatusMarker,
		SourceExtensions: cfg.SourceExtensions,
		Generator:        config.GeneratorConfig{Command: cfg.GeneratorCommand},
		Preview: config.PreviewConfig{
			Enabled: cfg.HTMLPreview,
			Output:  cfg.PreviewPath,
		},
	}

	data, err := yamlutil.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
