package coverage

import (
	"errors"
	"strings"
	"testing"
)

// reportHTML builds a minimal coverage report around the given rows.
func reportHTML(rows ...string) string {
	return `<!DOCTYPE html>
<html><body><table>
<tr><th>File</th><th>Function Coverage</th><th>Line Coverage</th><th>Region Coverage</th></tr>
` + strings.Join(rows, "\n") + `
</table></body></html>`
}

// row builds one report row: a file-name header cell plus six data cells
// where cell 1 is the percentage and cell 2 the covered/total pair.
func row(name, percent, ratio string) string {
	return "<tr><th>" + name + "</th><td>90.0%</td><td>" + percent + "</td><td>" + ratio +
		"</td><td>10</td><td>2</td><td>12</td></tr>"
}

func TestParseReport(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		wantRecords []Record
		wantErr     error
	}{
		{
			name: "single valid row",
			html: reportHTML(row("lib.rs", "80.0%", "8/10")),
			wantRecords: []Record{
				{FileName: "lib.rs", LineCoverage: 80.0, LinesCovered: 8, LinesTotal: 10},
			},
		},
		{
			name: "multiple rows preserve order",
			html: reportHTML(
				row("src/a.rs", "100.0%", "20/20"),
				row("src/b.rs", "66.7%", "2/3"),
			),
			wantRecords: []Record{
				{FileName: "src/a.rs", LineCoverage: 100.0, LinesCovered: 20, LinesTotal: 20},
				{FileName: "src/b.rs", LineCoverage: 66.7, LinesCovered: 2, LinesTotal: 3},
			},
		},
		{
			name: "whitespace and percent sign trimmed",
			html: reportHTML(row(" lib.rs ", " 80.5 % ", " 8 / 10 ")),
			wantRecords: []Record{
				{FileName: "lib.rs", LineCoverage: 80.5, LinesCovered: 8, LinesTotal: 10},
			},
		},
		{
			name: "short row skipped silently",
			html: reportHTML(
				"<tr><th>summary</th><td>80.0%</td><td>8/10</td></tr>",
				row("lib.rs", "80.0%", "8/10"),
			),
			wantRecords: []Record{
				{FileName: "lib.rs", LineCoverage: 80.0, LinesCovered: 8, LinesTotal: 10},
			},
		},
		{
			name:        "header only report",
			html:        reportHTML(),
			wantRecords: nil,
		},
		{
			name:        "no table at all",
			html:        "<html><body><p>no coverage</p></body></html>",
			wantRecords: nil,
		},
		{
			name: "malformed percent drops row keeps others",
			html: reportHTML(
				row("bad.rs", "n/a", "8/10"),
				row("good.rs", "50.0%", "5/10"),
			),
			wantRecords: []Record{
				{FileName: "good.rs", LineCoverage: 50.0, LinesCovered: 5, LinesTotal: 10},
			},
			wantErr: ErrMalformedPercent,
		},
		{
			name:        "malformed ratio drops row",
			html:        reportHTML(row("bad.rs", "80.0%", "8-10")),
			wantRecords: nil,
			wantErr:     ErrMalformedRatio,
		},
		{
			name:        "three part ratio drops row",
			html:        reportHTML(row("bad.rs", "80.0%", "8/10/12")),
			wantRecords: nil,
			wantErr:     ErrMalformedRatio,
		},
		{
			name:        "covered exceeding total drops row",
			html:        reportHTML(row("bad.rs", "80.0%", "12/10")),
			wantRecords: nil,
			wantErr:     ErrImpossibleRatio,
		},
		{
			name:        "missing file name cell drops row",
			html:        reportHTML("<tr><td>x</td><td>80.0%</td><td>8/10</td><td>1</td><td>2</td><td>3</td></tr>"),
			wantRecords: nil,
			wantErr:     ErrMissingFileCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseReport(strings.NewReader(tt.html))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(records) != len(tt.wantRecords) {
				t.Fatalf("expected %d records, got %d: %v", len(tt.wantRecords), len(records), records)
			}
			for i, want := range tt.wantRecords {
				if records[i] != want {
					t.Errorf("record[%d]: expected %+v, got %+v", i, want, records[i])
				}
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	records := []Record{
		{FileName: "lib.rs", LineCoverage: 80.0, LinesCovered: 8, LinesTotal: 10},
		{FileName: "src/net.rs", LineCoverage: 66.7, LinesCovered: 2, LinesTotal: 3},
	}

	got := RenderTable(records)

	want := TableHeader +
		"| lib.rs | ![](https://geps.dev/progress/80) | 80.0% | 8 | 10 |\n" +
		"| src/net.rs | ![](https://geps.dev/progress/67) | 66.7% | 2 | 3 |\n"
	if got != want {
		t.Errorf("RenderTable():\ngot:  %q\nwant: %q", got, want)
	}

	// Header block (2 lines) + one line per record.
	gotLines := strings.Count(got, "\n")
	if gotLines != 2+len(records) {
		t.Errorf("expected %d lines, got %d", 2+len(records), gotLines)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(nil); got != TableHeader {
		t.Errorf("expected header only, got %q", got)
	}
}

func TestBarURL(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       string
	}{
		{name: "rounds up", percentage: 66.7, want: "https://geps.dev/progress/67"},
		{name: "rounds down", percentage: 33.3, want: "https://geps.dev/progress/33"},
		{name: "full coverage", percentage: 100.0, want: "https://geps.dev/progress/100"},
		{name: "zero coverage", percentage: 0.0, want: "https://geps.dev/progress/0"},
		{name: "half rounds away from zero", percentage: 49.5, want: "https://geps.dev/progress/50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BarURL(tt.percentage); got != tt.want {
				t.Errorf("BarURL(%v) = %q, want %q", tt.percentage, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "integer gets one decimal", value: 80, want: "80.0"},
		{name: "one decimal preserved", value: 66.7, want: "66.7"},
		{name: "two decimals preserved", value: 85.25, want: "85.25"},
		{name: "zero", value: 0, want: "0.0"},
		{name: "hundred", value: 100, want: "100.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPercent(tt.value); got != tt.want {
				t.Errorf("formatPercent(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
