// Package readmegen assembles a project README from three inputs: the
// output of an external readme generator (`cargo readme`), an HTML
// code-coverage report, and cross-referenced documentation fragments.
//
// # Quick Start
//
// Build a service and run one assembly:
//
//	svc, err := readmegen.New(readmegen.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := svc.Assemble(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", res.ReadmePath)
//
// # Assembly Pipeline
//
// One run performs these steps:
//
//  1. Generate the base document with the external generator (fatal on failure)
//  2. Persist the draft README immediately
//  3. Render the HTML coverage report into a markdown table (absent report =
//     graceful early exit with the draft as the final artifact)
//  4. Replace the test-status marker with the rendered table
//  5. Resolve ([docs: label](./path)) references: markdown files inline
//     verbatim, source files go through the generator in body-only mode
//  6. Persist the final README.md and TEST_STATUS.md
//
// Docs-reference failures are per-item: a missing target or a failed scoped
// generation leaves that placeholder verbatim with a diagnostic and the run
// continues.
//
// # Configuration
//
// All paths live in an explicit Config rather than hardcoded constants:
//
//	svc, err := readmegen.New(readmegen.Config{
//	    CoverageReportPath: "build/coverage/index.html",
//	    ReadmePath:         "README.md",
//	    TestStatusPath:     "TEST_STATUS.md",
//	    StatusMarker:       "[See Test Status](./TEST_STATUS.md)",
//	    HTMLPreview:        true,
//	    PreviewPath:        "README.html",
//	}, readmegen.WithLogger(logf))
package readmegen
