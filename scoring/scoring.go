// Package scoring derives the five category scores from a single fetch
// outcome and the parsed page. Scorers are independent of each other; they
// are invoked in a fixed order only so the lifecycle manager can report
// per-scorer progress.
package scoring

import (
	"github.com/sitegauge/sitegauge/fetcher"
	"github.com/sitegauge/sitegauge/markup"
	"github.com/sitegauge/sitegauge/models"
)

// Input carries everything a scorer may look at. When FetchErr is set, Fetch
// is nil and Doc matches nothing.
type Input struct {
	Fetch    *fetcher.Result
	Doc      *markup.Document
	URL      string
	FetchErr error
}

// Scorer is one category scorer. Score is a pure function of its input.
type Scorer struct {
	Name  string
	Score func(Input) models.CategoryScore
}

// Scorers returns the five category scorers in their fixed pipeline order.
func Scorers() []Scorer {
	return []Scorer{
		{Name: models.CategoryPerformance, Score: scorePerformance},
		{Name: models.CategoryAccessibility, Score: scoreAccessibility},
		{Name: models.CategorySEO, Score: scoreSEO},
		{Name: models.CategorySecurity, Score: scoreSecurity},
		{Name: models.CategoryContent, Score: scoreContent},
	}
}

// clamp bounds a score to [0, 100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// fetchFailure is the contained outcome every scorer returns when the page
// could not be fetched at the network level: zero score, the error text as
// the sole issue. It never aborts the run.
func fetchFailure(err error) models.CategoryScore {
	return models.CategoryScore{
		Score:  0,
		Issues: []string{err.Error()},
	}
}
