package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/sitegauge/sitegauge/models"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		URL:        "https://example.com",
		AnalyzedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Performance: &models.CategoryScore{
			Score:  85,
			Issues: []string{"Load time over 1s (1200ms)"},
			Metrics: map[string]any{
				"load_time":   int64(1200),
				"page_size":   52340,
				"status_code": 200,
			},
		},
		Accessibility: &models.CategoryScore{
			Score:  90,
			Issues: []string{"2 images missing alt attributes"},
		},
		SEO: &models.CategoryScore{
			Score:  75,
			Issues: []string{"Missing canonical URL", "Missing Open Graph tags"},
		},
		Security: &models.CategoryScore{
			Score:  45,
			Issues: []string{"Missing X-Frame-Options header"},
		},
		Content: &models.CategoryScore{
			Score:  100,
			Issues: []string{},
			Metrics: map[string]any{
				"word_count":      450,
				"heading_count":   4,
				"paragraph_count": 10,
				"link_count":      12,
				"image_count":     3,
			},
		},
		OverallScore: 79,
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	g := NewGenerator()

	out, err := g.Render(sampleResult(), "abc12345-6789")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render returned empty payload")
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("payload does not start with a PDF header: %q", out[:8])
	}
}

func TestRender_Deterministic(t *testing.T) {
	g := NewGenerator()
	result := sampleResult()

	first, err := g.Render(result, "abc12345-6789")
	if err != nil {
		t.Fatalf("first Render: %v", err)
	}
	second, err := g.Render(result, "abc12345-6789")
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rendering the same result twice produced different bytes")
	}
}

func TestRender_OmitsAbsentCategories(t *testing.T) {
	g := NewGenerator()
	result := &models.AnalysisResult{
		URL:          "https://example.com",
		AnalyzedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Performance:  &models.CategoryScore{Score: 100, Issues: []string{}},
		OverallScore: 100,
	}

	out, err := g.Render(result, "only-perf")
	if err != nil {
		t.Fatalf("Render with absent categories: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render returned empty payload")
	}

	full, err := g.Render(sampleResult(), "only-perf")
	if err != nil {
		t.Fatalf("Render full: %v", err)
	}
	if len(out) >= len(full) {
		t.Errorf("single-section report (%d bytes) not smaller than full report (%d bytes)", len(out), len(full))
	}
}

func TestRender_LongIssueListPaginates(t *testing.T) {
	g := NewGenerator()
	result := sampleResult()

	issues := make([]string, 120)
	for i := range issues {
		issues[i] = "Missing alt attribute on a decorative image somewhere deep in the page body"
	}
	result.Security.Issues = issues

	out, err := g.Render(result, "paginated")
	if err != nil {
		t.Fatalf("Render with long issue list: %v", err)
	}
	// The full issue list is never truncated, so the report must have grown.
	base, _ := g.Render(sampleResult(), "paginated")
	if len(out) <= len(base) {
		t.Errorf("long issue list did not grow the report: %d <= %d bytes", len(out), len(base))
	}
}
