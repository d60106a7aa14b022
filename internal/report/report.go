// Package report assembles a full EDA report for a table: the data-quality
// profile plus per-column aggregates, rendered as markdown and HTML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
	"datanova/internal/aggregate"
	"datanova/internal/profile"
)

// Report is a generated EDA report artifact.
type Report struct {
	ID          core.ReportID
	Title       string
	GeneratedAt time.Time
	Markdown    []byte
	HTML        []byte
}

// Options adjusts report generation.
type Options struct {
	// Title heads the report; empty defaults to "Data Profile Report".
	Title string
	// TopN bounds the per-column frequency tables; <1 defaults to the
	// standard top-N.
	TopN int
}

// Generate builds the report for a table. The input is only read.
func Generate(t *table.Table, opts Options) (*Report, error) {
	if opts.Title == "" {
		opts.Title = "Data Profile Report"
	}
	if opts.TopN < 1 {
		opts.TopN = eda.DefaultTopN
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	fmt.Fprintf(&b, "ROW TOTAL = %s COLUMNS = %d\n\n", formatThousands(t.NumRows()), t.NumCols())

	b.WriteString("## Column Profile\n\n")
	prof := profile.Build(t)
	writeMarkdownTable(&b, prof.Header(), prof.Records())

	for i := 0; i < t.NumCols(); i++ {
		col := t.ColumnAt(i)
		fmt.Fprintf(&b, "\n## %s\n\n", col.Name())

		if col.MissingCount() == col.Len() {
			b.WriteString("Entirely blank, skipped.\n")
			continue
		}

		switch col.Kind() {
		case table.KindNumeric:
			summary, err := aggregate.NumericSummary(t, col.Name())
			if err != nil {
				return nil, err
			}
			writeMarkdownTable(&b, summary.Header(), summary.Records())
		case table.KindText, table.KindBool:
			freq, err := aggregate.TopCategories(t, col.Name(), opts.TopN)
			if err != nil {
				return nil, err
			}
			writeMarkdownTable(&b, freq.Header(), freq.Records())
		default:
			b.WriteString("No aggregate view for datetime columns.\n")
		}
	}

	md := []byte(b.String())
	return &Report{
		ID:          core.ReportID(core.NewID()),
		Title:       opts.Title,
		GeneratedAt: time.Now(),
		Markdown:    md,
		HTML:        renderHTML(md),
	}, nil
}

func renderHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.ToHTML(md, p, renderer)
}

func writeMarkdownTable(b *strings.Builder, header []string, records [][]string) {
	b.WriteString("| " + strings.Join(escapeCells(header), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, rec := range records {
		b.WriteString("| " + strings.Join(escapeCells(rec), " | ") + " |\n")
	}
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", "\\|")
	}
	return out
}

// formatThousands renders n with comma separators.
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
