package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the readmegen CLI. Every flag defaults to
// "unset" so the tool stays runnable with no arguments at all.
type cliFlags struct {
	config         string
	quiet          bool
	verbose        bool
	output         string
	coverageReport string
	statusOutput   string
	marker         string
	generator      string
	html           bool
	htmlOutput     string
	printConfig    bool
	version        bool
}

// parseFlags parses CLI arguments. args includes the program name.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("readmegen", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show runtime diagnostics")
	fs.StringVarP(&f.output, "output", "o", "", "README output path")
	fs.StringVar(&f.coverageReport, "coverage-report", "", "HTML coverage report path")
	fs.StringVar(&f.statusOutput, "status-output", "", "coverage table output path")
	fs.StringVar(&f.marker, "marker", "", "test-status placeholder to replace")
	fs.StringVar(&f.generator, "generator", "", "readme generator binary")
	fs.BoolVar(&f.html, "html", false, "also render an HTML preview of the README")
	fs.StringVar(&f.htmlOutput, "html-output", "", "HTML preview output path (implies --html)")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}

// printUsage writes usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: readmegen [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assembles README.md and TEST_STATUS.md from `cargo readme` output,")
	fmt.Fprintln(w, "an HTML coverage report, and ([docs: ...](./...)) references.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
