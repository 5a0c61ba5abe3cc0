// Package placeholder resolves the two placeholder kinds a README may
// contain: a fixed test-status marker, and docs references of the form
// ([docs: <label>](./<path>)) that inline content from another file.
package placeholder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-readmegen/internal/fileutil"
	"github.com/alnah/go-readmegen/internal/generate"
)

// Logger receives diagnostic messages for per-item failures.
type Logger func(format string, args ...any)

// DefaultSourceExts lists extensions resolved through the readme generator
// rather than read verbatim.
var DefaultSourceExts = []string{".rs"}

// Ref is one docs-reference occurrence.
type Ref struct {
	Label string // free-text label between "[docs: " and "]"
	Path  string // referenced path, relative to the working directory
	Raw   string // full placeholder text, outer parentheses included
}

// Docs-reference grammar literals.
const (
	refOpen  = "([docs: "
	refMid   = "](./"
	refClose = "))"
)

// ReplaceMarker substitutes every occurrence of marker with replacement.
// Exact string match; a document without the marker is returned unchanged.
func ReplaceMarker(doc, marker, replacement string) string {
	if marker == "" {
		return doc
	}
	return strings.ReplaceAll(doc, marker, replacement)
}

// FindRefs scans doc left to right for docs references. The grammar is
// matched literally rather than with a greedy pattern, so parentheses in
// surrounding text cannot extend a match: the label runs to the first "]",
// the path runs to the closing "))" and must carry an allowed extension.
func FindRefs(doc string, sourceExts []string) []Ref {
	var refs []Ref

	pos := 0
	for {
		start := strings.Index(doc[pos:], refOpen)
		if start < 0 {
			break
		}
		start += pos
		// Resume after the opener whether or not this occurrence matches.
		pos = start + len(refOpen)

		rest := doc[pos:]
		labelEnd := strings.Index(rest, "]")
		if labelEnd < 0 {
			break
		}
		label := rest[:labelEnd]
		if strings.ContainsAny(label, "\n") {
			continue
		}

		rest = rest[labelEnd:]
		if !strings.HasPrefix(rest, refMid) {
			continue
		}
		rest = rest[len(refMid):]

		pathEnd := strings.Index(rest, refClose)
		if pathEnd < 0 {
			continue
		}
		path := rest[:pathEnd]
		if strings.ContainsAny(path, "()\n") || !hasAllowedExt(path, sourceExts) {
			continue
		}

		raw := refOpen + label + refMid + path + refClose
		refs = append(refs, Ref{Label: label, Path: path, Raw: raw})
		pos = start + len(raw)
	}

	return refs
}

// hasAllowedExt reports whether path ends in .md or one of the source
// extensions.
func hasAllowedExt(path string, sourceExts []string) bool {
	if strings.HasSuffix(path, ".md") {
		return true
	}
	for _, ext := range sourceExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Resolver substitutes docs references with resolved content.
type Resolver struct {
	Generator  generate.Generator
	SourceExts []string // nil = DefaultSourceExts
	Log        Logger   // nil = silent
}

// Resolve replaces each docs reference found in doc. References are located
// once, in the original document, and resolved in that order; replacement
// text is never re-scanned, so there is no recursive expansion. Failures are
// per-item: a missing target or a failed generator invocation leaves that
// placeholder verbatim with a diagnostic and resolution continues.
func (r *Resolver) Resolve(ctx context.Context, doc string) string {
	sourceExts := r.SourceExts
	if sourceExts == nil {
		sourceExts = DefaultSourceExts
	}

	resolved := make(map[string]bool)
	for _, ref := range FindRefs(doc, sourceExts) {
		if resolved[ref.Raw] {
			continue
		}
		resolved[ref.Raw] = true

		if !fileutil.FileExists(ref.Path) {
			r.logf("referenced file not found: %s", ref.Path)
			continue
		}

		content, err := r.resolveContent(ctx, ref.Path, sourceExts)
		if err != nil {
			r.logf("skipping %s: %v", ref.Path, err)
			continue
		}

		r.logf("replacing %s with generated markdown content", ref.Path)
		// Duplicate placeholders for the same path are all replaced here.
		doc = strings.ReplaceAll(doc, ref.Raw, content)
	}

	return doc
}

// resolveContent produces the replacement text for one referenced path:
// source files go through the generator in body-only mode, markdown files
// are read verbatim.
func (r *Resolver) resolveContent(ctx context.Context, path string, sourceExts []string) (string, error) {
	for _, ext := range sourceExts {
		if strings.HasSuffix(path, ext) {
			return r.Generator.Generate(ctx, generate.Options{InputPath: path, BodyOnly: true})
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the document being assembled
	if err != nil {
		return "", fmt.Errorf("reading referenced file: %w", err)
	}
	return string(data), nil
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log(format, args...)
	}
}
