package models

import "time"

// Status is the lifecycle state of an analysis run.
type Status string

const (
	StatusCreated   Status = "created"
	StatusFetching  Status = "fetching"
	StatusScoring   Status = "scoring"
	StatusRendering Status = "rendering"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// statusOrder gives each forward state its position in the pipeline.
// Terminal states absorb; "failed" is reachable from any non-terminal state.
var statusOrder = map[Status]int{
	StatusCreated:   0,
	StatusFetching:  1,
	StatusScoring:   2,
	StatusRendering: 3,
	StatusCompleted: 4,
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ValidTransition reports whether a record may move from one status to the
// next: strictly forward along created→fetching→scoring→rendering→completed,
// or to failed from any non-terminal state. Never backward, never out of a
// terminal state.
func ValidTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusFailed {
		return true
	}
	fo, ok := statusOrder[from]
	if !ok {
		return false
	}
	t, ok := statusOrder[to]
	if !ok {
		return false
	}
	return t == fo+1
}

// AnalysisRecord is the persisted state of one analysis run, created once per
// submission and mutated only by the lifecycle manager.
//
// Invariants: Results is set iff Status is completed; Error is set iff Status
// is failed; ReportPDF set implies completed. Results and Error are mutually
// exclusive over the record's whole lifetime.
type AnalysisRecord struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	Status    Status          `json:"status"`
	Progress  int             `json:"progress"`
	StartedAt time.Time       `json:"started_at"`
	Results   *AnalysisResult `json:"results"`
	Error     string          `json:"error,omitempty"`

	// ReportPDF holds the rendered report bytes, base64 in the persisted
	// JSON. It is stripped from status responses.
	ReportPDF []byte `json:"report_pdf,omitempty"`
}

// AnalysisResult is the immutable value attached to a completed record.
// A nil category means that scorer produced nothing and is excluded from
// the overall mean; a zero-score category still counts as 0.
type AnalysisResult struct {
	URL           string         `json:"url"`
	AnalyzedAt    time.Time      `json:"analyzed_at"`
	Performance   *CategoryScore `json:"performance,omitempty"`
	Accessibility *CategoryScore `json:"accessibility,omitempty"`
	SEO           *CategoryScore `json:"seo,omitempty"`
	Security      *CategoryScore `json:"security,omitempty"`
	Content       *CategoryScore `json:"content,omitempty"`
	OverallScore  int            `json:"overall_score"`
}

// Category returns the score for the given category name, or nil.
func (r *AnalysisResult) Category(name string) *CategoryScore {
	switch name {
	case CategoryPerformance:
		return r.Performance
	case CategoryAccessibility:
		return r.Accessibility
	case CategorySEO:
		return r.SEO
	case CategorySecurity:
		return r.Security
	case CategoryContent:
		return r.Content
	}
	return nil
}

// SetCategory attaches a score under the given category name.
func (r *AnalysisResult) SetCategory(name string, cs *CategoryScore) {
	switch name {
	case CategoryPerformance:
		r.Performance = cs
	case CategoryAccessibility:
		r.Accessibility = cs
	case CategorySEO:
		r.SEO = cs
	case CategorySecurity:
		r.Security = cs
	case CategoryContent:
		r.Content = cs
	}
}

// Category names, in the fixed scoring order.
const (
	CategoryPerformance   = "performance"
	CategoryAccessibility = "accessibility"
	CategorySEO           = "seo"
	CategorySecurity      = "security"
	CategoryContent       = "content"
)

// CategoryNames lists the five categories in scoring order.
var CategoryNames = []string{
	CategoryPerformance,
	CategoryAccessibility,
	CategorySEO,
	CategorySecurity,
	CategoryContent,
}

// CategoryScore is one category's outcome: a clamped score, the issues found
// in detection order, and scorer-specific metrics opaque to everything else.
type CategoryScore struct {
	Score   int            `json:"score"`
	Issues  []string       `json:"issues"`
	Metrics map[string]any `json:"metrics,omitempty"`
}
