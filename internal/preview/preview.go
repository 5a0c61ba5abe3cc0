// Package preview renders the assembled README to a standalone HTML page.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates HTML rendering failed.
var ErrRender = errors.New("HTML preview rendering failed")

// htmlTemplate wraps goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>README</title>
</head>
<body>
%s
</body>
</html>`

// Renderer converts README markdown to HTML using goldmark (pure Go).
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions and syntax highlighting.
// GFM tables are required so the coverage table renders as a table.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used; docs references may
			// inline arbitrary file content.
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select since goldmark does
// not take a context.
func (r *Renderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
