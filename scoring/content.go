package scoring

import (
	"strings"

	"github.com/sitegauge/sitegauge/models"
)

// scoreContent scores the page text with script/style content stripped:
// word count, headings, paragraphs and links.
func scoreContent(in Input) models.CategoryScore {
	if in.FetchErr != nil {
		return fetchFailure(in.FetchErr)
	}

	text := in.Doc.Text()
	wordCount := len(strings.Fields(text))
	headingCount := in.Doc.Count("h1, h2, h3, h4, h5, h6")
	paragraphCount := in.Doc.Count("p")
	linkCount := in.Doc.Count("a")
	imageCount := in.Doc.Count("img")

	score := 100
	issues := []string{}

	if wordCount < 300 {
		issues = append(issues, "Content too short (less than 300 words)")
		score -= 20
	}
	if headingCount == 0 {
		issues = append(issues, "No headings found")
		score -= 15
	}
	if paragraphCount == 0 {
		issues = append(issues, "No paragraphs found")
		score -= 10
	}
	if linkCount == 0 {
		issues = append(issues, "No links found")
		score -= 5
	}

	return models.CategoryScore{
		Score:  clamp(score),
		Issues: issues,
		Metrics: map[string]any{
			"word_count":      wordCount,
			"heading_count":   headingCount,
			"paragraph_count": paragraphCount,
			"link_count":      linkCount,
			"image_count":     imageCount,
			"content_length":  len(text),
		},
	}
}
