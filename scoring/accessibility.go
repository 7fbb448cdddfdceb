package scoring

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitegauge/sitegauge/models"
)

// scoreAccessibility checks alt text, heading structure, form labelling and
// explicit color styling.
func scoreAccessibility(in Input) models.CategoryScore {
	if in.FetchErr != nil {
		return fetchFailure(in.FetchErr)
	}

	score := 100
	issues := []string{}

	imagesWithoutAlt := in.Doc.Count("img:not([alt])")
	if imagesWithoutAlt > 0 {
		issues = append(issues, fmt.Sprintf("%d images missing alt attributes", imagesWithoutAlt))
		score -= imagesWithoutAlt * 5
	}

	h1Count := in.Doc.Count("h1")
	if h1Count == 0 {
		issues = append(issues, "No H1 heading found")
		score -= 20
	} else if h1Count > 1 {
		issues = append(issues, "Multiple H1 headings found")
		score -= 10
	}

	// Inputs with no aria labelling and no wrapping <label>.
	inputsWithoutLabels := in.Doc.Find("input:not([aria-label]):not([aria-labelledby])").
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Closest("label").Length() == 0
		}).Length()
	if inputsWithoutLabels > 0 {
		issues = append(issues, fmt.Sprintf("%d form inputs missing labels", inputsWithoutLabels))
		score -= inputsWithoutLabels * 10
	}

	if in.Doc.Count(`[style*="color"]`) == 0 {
		issues = append(issues, "No explicit color contrast found")
		score -= 5
	}

	return models.CategoryScore{
		Score:  clamp(score),
		Issues: issues,
		Metrics: map[string]any{
			"images_without_alt":    imagesWithoutAlt,
			"h1_count":              h1Count,
			"inputs_without_labels": inputsWithoutLabels,
		},
	}
}
