package scoring

import (
	"fmt"

	"github.com/sitegauge/sitegauge/models"
)

// scorePerformance scores load time, page weight and response status.
//
// Deductions: 10/20/30 for elapsed time over 1000/2000/3000 ms, 10/20 for
// body size over 500 KB / 1 MB, 25 for a non-200 status.
func scorePerformance(in Input) models.CategoryScore {
	if in.FetchErr != nil {
		return fetchFailure(in.FetchErr)
	}

	score := 100
	issues := []string{}

	loadTime := in.Fetch.ElapsedMs
	switch {
	case loadTime > 3000:
		issues = append(issues, fmt.Sprintf("Very slow load time (%dms)", loadTime))
		score -= 30
	case loadTime > 2000:
		issues = append(issues, fmt.Sprintf("Slow load time (%dms)", loadTime))
		score -= 20
	case loadTime > 1000:
		issues = append(issues, fmt.Sprintf("Load time over 1s (%dms)", loadTime))
		score -= 10
	}

	pageSize := len(in.Fetch.Body)
	switch {
	case pageSize > 1000000:
		issues = append(issues, fmt.Sprintf("Page size over 1MB (%d bytes)", pageSize))
		score -= 20
	case pageSize > 500000:
		issues = append(issues, fmt.Sprintf("Page size over 500KB (%d bytes)", pageSize))
		score -= 10
	}

	if in.Fetch.StatusCode != 200 {
		issues = append(issues, fmt.Sprintf("Non-200 status code (%d)", in.Fetch.StatusCode))
		score -= 25
	}

	return models.CategoryScore{
		Score:  clamp(score),
		Issues: issues,
		Metrics: map[string]any{
			"load_time":         loadTime,
			"page_size":         pageSize,
			"status_code":       in.Fetch.StatusCode,
			"images_count":      in.Doc.Count("img"),
			"scripts_count":     in.Doc.Count("script"),
			"stylesheets_count": in.Doc.Count(`link[rel="stylesheet"]`),
		},
	}
}
