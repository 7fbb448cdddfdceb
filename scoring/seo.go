package scoring

import (
	"strings"

	"github.com/sitegauge/sitegauge/models"
)

// scoreSEO checks title, meta description, H1, meta keywords, canonical link
// and Open Graph tags.
func scoreSEO(in Input) models.CategoryScore {
	if in.FetchErr != nil {
		return fetchFailure(in.FetchErr)
	}

	score := 100
	issues := []string{}

	title := strings.TrimSpace(in.Doc.Find("title").First().Text())
	if title == "" {
		issues = append(issues, "Missing title tag")
		score -= 25
	} else if len(title) < 30 || len(title) > 60 {
		issues = append(issues, "Title length should be 30-60 characters")
		score -= 10
	}

	metaDescription := in.Doc.Attr(`meta[name="description"]`, "content")
	if metaDescription == "" {
		issues = append(issues, "Missing meta description")
		score -= 20
	} else if len(metaDescription) < 120 || len(metaDescription) > 160 {
		issues = append(issues, "Meta description should be 120-160 characters")
		score -= 10
	}

	h1Count := in.Doc.Count("h1")
	if h1Count == 0 {
		issues = append(issues, "Missing H1 tag")
		score -= 15
	}

	if in.Doc.Attr(`meta[name="keywords"]`, "content") == "" {
		issues = append(issues, "Missing meta keywords")
		score -= 5
	}

	canonical := in.Doc.Attr(`link[rel="canonical"]`, "href")
	if canonical == "" {
		issues = append(issues, "Missing canonical URL")
		score -= 10
	}

	ogTitle := in.Doc.Attr(`meta[property="og:title"]`, "content")
	ogDescription := in.Doc.Attr(`meta[property="og:description"]`, "content")
	if ogTitle == "" || ogDescription == "" {
		issues = append(issues, "Missing Open Graph tags")
		score -= 10
	}

	return models.CategoryScore{
		Score:  clamp(score),
		Issues: issues,
		Metrics: map[string]any{
			"title":            title,
			"meta_description": metaDescription,
			"h1_count":         h1Count,
			"has_canonical":    canonical != "",
			"has_og_tags":      ogTitle != "" && ogDescription != "",
		},
	}
}
