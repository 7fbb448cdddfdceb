// Package report renders a completed analysis into a paginated PDF artifact.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/sitegauge/sitegauge/models"
)

// metricLine maps a metrics key to its printed label, in display order.
type metricLine struct {
	key   string
	label string
}

// sectionTitles and sectionMetrics fix the layout per category.
var sectionTitles = map[string]string{
	models.CategoryPerformance:   "Performance Analysis",
	models.CategoryAccessibility: "Accessibility Analysis",
	models.CategorySEO:           "SEO Analysis",
	models.CategorySecurity:      "Security Analysis",
	models.CategoryContent:       "Content Analysis",
}

var sectionMetrics = map[string][]metricLine{
	models.CategoryPerformance: {
		{"load_time", "Load Time (ms)"},
		{"page_size", "Page Size (bytes)"},
		{"status_code", "Status Code"},
	},
	models.CategoryContent: {
		{"word_count", "Word Count"},
		{"heading_count", "Headings"},
		{"paragraph_count", "Paragraphs"},
		{"link_count", "Links"},
		{"image_count", "Images"},
	},
}

// Generator renders analysis results as PDF reports.
type Generator struct{}

// NewGenerator returns a report Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces the PDF report for a well-formed result. Absent categories
// are simply omitted. The creation date is pinned to the analysis timestamp
// so rendering the same result twice yields identical bytes.
func (g *Generator) Render(result *models.AnalysisResult, id string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(result.AnalyzedAt)
	pdf.SetModificationDate(result.AnalyzedAt)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Website Analysis Report", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Analysis ID: %s", id), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 7, fmt.Sprintf("URL: %s", result.URL), "", "L", false)
	pdf.CellFormat(0, 7, fmt.Sprintf("Analyzed: %s", result.AnalyzedAt.Format("2006-01-02 15:04:05 UTC")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Overall Score: %d/100", result.OverallScore), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, name := range models.CategoryNames {
		cs := result.Category(name)
		if cs == nil {
			continue
		}
		writeSection(pdf, sectionTitles[name], name, cs)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSection emits one category section: title, score, metric lines, and
// the full issue list.
func writeSection(pdf *fpdf.Fpdf, title, name string, cs *models.CategoryScore) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Score: %d/100", cs.Score), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issues Found: %d", len(cs.Issues)), "", 1, "L", false, 0, "")

	for _, m := range sectionMetrics[name] {
		if v, ok := cs.Metrics[m.key]; ok {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", m.label, formatMetric(v)), "", 1, "L", false, 0, "")
		}
	}

	if len(cs.Issues) > 0 {
		pdf.CellFormat(0, 6, "Issues:", "", 1, "L", false, 0, "")
		for _, issue := range cs.Issues {
			pdf.MultiCell(0, 5, "- "+issue, "", "L", false)
		}
	}
	pdf.Ln(5)
}

// formatMetric prints a metric value without the float artifacts JSON
// decoding introduces for numbers.
func formatMetric(v any) string {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%g", n)
	default:
		return fmt.Sprintf("%v", v)
	}
}
