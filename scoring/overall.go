package scoring

import (
	"math"

	"github.com/sitegauge/sitegauge/models"
)

// Overall computes the unweighted mean of the present category scores,
// rounded to the nearest integer. Absent categories are excluded from the
// mean; a category that errored to 0 still counts as 0. With no categories
// present the overall score is 0.
func Overall(result *models.AnalysisResult) int {
	sum := 0
	count := 0
	for _, name := range models.CategoryNames {
		if cs := result.Category(name); cs != nil {
			sum += cs.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
