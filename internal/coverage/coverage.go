// Package coverage converts an HTML coverage report into a markdown table.
//
// The report is expected to contain table rows of per-file results: a header
// cell naming the file, a percentage cell, and a "covered/total" cell. The
// first row is a column header and is skipped. Rows with fewer than six data
// cells are summary or spacer rows and are skipped silently; rows with
// malformed numeric cells are dropped with a per-row diagnostic so one bad
// row cannot corrupt or abort the whole table.
package coverage

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Sentinel errors for malformed report rows.
var (
	ErrMissingFileCell  = errors.New("row has no file name cell")
	ErrMalformedPercent = errors.New("malformed coverage percentage")
	ErrMalformedRatio   = errors.New("malformed covered/total pair")
	ErrImpossibleRatio  = errors.New("lines covered exceeds lines total")
)

// minDataCells is the cell count below which a row is treated as a
// non-record row (summary, spacer) and skipped without diagnostics.
const minDataCells = 6

// Record is one file's coverage as reported by the HTML report.
type Record struct {
	FileName     string
	LineCoverage float64 // percentage, 0-100
	LinesCovered int
	LinesTotal   int
}

// TableHeader is the fixed markdown header for rendered coverage tables.
const TableHeader = "| File | Coverage Bar | Line Coverage | Lines Covered | Lines Total |\n" +
	"|------|--------------|---------------|---------------|-------------|\n"

// ParseReportFile reads and parses the HTML coverage report at path.
func ParseReportFile(path string) ([]Record, error) {
	f, err := os.Open(path) // #nosec G304 -- report path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("opening coverage report: %w", err)
	}
	defer f.Close()
	return ParseReport(f)
}

// ParseReport parses an HTML coverage report into records, one per valid row.
// Records appear in source order. Malformed rows are dropped and reported
// through the returned error (joined per-row diagnostics); the records are
// still valid and usable when the error is non-nil.
func ParseReport(r io.Reader) ([]Record, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing coverage report: %w", err)
	}

	rows := collectRows(doc)
	if len(rows) <= 1 {
		return nil, nil
	}

	var records []Record
	var rowErrs []error

	// First row is the column header.
	for i, row := range rows[1:] {
		header, cells := rowCells(row)
		if len(cells) < minDataCells {
			continue
		}

		rec, err := parseRow(header, cells)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("coverage row %d: %w", i+2, err))
			continue
		}
		records = append(records, rec)
	}

	return records, errors.Join(rowErrs...)
}

// RenderTable renders records as a markdown table, header included, in the
// order given. Each row carries a coverage bar badge for the rounded
// percentage.
func RenderTable(records []Record) string {
	var b strings.Builder
	b.WriteString(TableHeader)
	for _, rec := range records {
		fmt.Fprintf(&b, "| %s | ![](%s) | %s%% | %d | %d |\n",
			rec.FileName, BarURL(rec.LineCoverage), formatPercent(rec.LineCoverage),
			rec.LinesCovered, rec.LinesTotal)
	}
	return b.String()
}

// BarURL returns the progress-bar image URL for a coverage percentage,
// rounded to the nearest integer. Building the URL is purely textual;
// fetching the image is the markdown viewer's concern.
func BarURL(percentage float64) string {
	return fmt.Sprintf("https://geps.dev/progress/%d", int(math.Round(percentage)))
}

// formatPercent renders a percentage with its fractional digits preserved,
// always showing at least one decimal place (80 -> "80.0", 85.25 -> "85.25").
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// parseRow extracts a record from a row's file-name header cell and its
// data cells. cells has at least minDataCells entries.
func parseRow(header string, cells []string) (Record, error) {
	name := strings.TrimSpace(header)
	if name == "" {
		return Record{}, ErrMissingFileCell
	}

	pctText := strings.TrimSuffix(strings.TrimSpace(cells[1]), "%")
	pct, err := strconv.ParseFloat(strings.TrimSpace(pctText), 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedPercent, cells[1])
	}

	parts := strings.Split(strings.TrimSpace(cells[2]), "/")
	if len(parts) != 2 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRatio, cells[2])
	}
	covered, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRatio, cells[2])
	}
	total, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRatio, cells[2])
	}
	if covered > total {
		return Record{}, fmt.Errorf("%w: %d/%d", ErrImpossibleRatio, covered, total)
	}

	return Record{
		FileName:     name,
		LineCoverage: pct,
		LinesCovered: covered,
		LinesTotal:   total,
	}, nil
}

// collectRows returns all <tr> elements in document order.
func collectRows(doc *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows
}

// rowCells returns the text of the row's first <th> cell (the file name)
// and the text of each <td> cell, in order.
func rowCells(row *html.Node) (header string, cells []string) {
	headerFound := false
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "th":
				if !headerFound {
					header = nodeText(n)
					headerFound = true
				}
				return
			case "td":
				cells = append(cells, nodeText(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return header, cells
}

// nodeText concatenates all text nodes beneath n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
