package readmegen

// Default artifact locations and placeholder, matching the conventional
// project layout the assembler was built for.
const (
	DefaultCoverageReportPath = ".artifacts/coverage/html/index.html"
	DefaultReadmePath         = "README.md"
	DefaultTestStatusPath     = "TEST_STATUS.md"
	DefaultStatusMarker       = "[See Test Status](./TEST_STATUS.md)"
	DefaultPreviewPath        = "README.html"
	DefaultGeneratorCommand   = "cargo"
)

// Config holds all paths and settings for one assembly run. Paths are
// resolved relative to the working directory. Use DefaultConfig for the
// conventional unparameterized behavior.
type Config struct {
	CoverageReportPath string   // HTML coverage report to render
	ReadmePath         string   // README artifact, written twice (draft, then final)
	TestStatusPath     string   // standalone coverage table artifact
	StatusMarker       string   // placeholder replaced by the coverage table
	SourceExtensions   []string // extensions resolved through the generator (nil = .rs)
	GeneratorCommand   string   // readme generator binary (default "cargo")
	HTMLPreview        bool     // also render the final README to HTML
	PreviewPath        string   // HTML preview artifact path
}

// DefaultConfig returns the conventional configuration.
func DefaultConfig() Config {
	return Config{
		CoverageReportPath: DefaultCoverageReportPath,
		ReadmePath:         DefaultReadmePath,
		TestStatusPath:     DefaultTestStatusPath,
		StatusMarker:       DefaultStatusMarker,
		GeneratorCommand:   DefaultGeneratorCommand,
		PreviewPath:        DefaultPreviewPath,
	}
}

// Validate checks that required fields are present.
func (c Config) Validate() error {
	switch {
	case c.ReadmePath == "":
		return errInvalid("ReadmePath")
	case c.TestStatusPath == "":
		return errInvalid("TestStatusPath")
	case c.CoverageReportPath == "":
		return errInvalid("CoverageReportPath")
	case c.StatusMarker == "":
		return errInvalid("StatusMarker")
	case c.HTMLPreview && c.PreviewPath == "":
		return errInvalid("PreviewPath")
	}
	return nil
}

// Result reports what one assembly run produced.
type Result struct {
	ReadmePath     string // final README artifact
	TestStatusPath string // coverage table artifact ("" when the report was absent)
	PreviewPath    string // HTML preview artifact ("" when disabled)
	CoverageFound  bool   // false = graceful early exit, README draft only
	Records        int    // valid coverage rows rendered
}

// Logger receives progress and per-item diagnostic messages.
type Logger func(format string, args ...any)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the diagnostic logger. The default discards messages.
func WithLogger(log Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}
