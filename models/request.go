package models

// AnalyzeRequest is the payload for POST /api/v1/analyze.
type AnalyzeRequest struct {
	// URL is the page to analyze. Required, must be an absolute URL.
	URL string `json:"url" binding:"required,url"`

	// Options is reserved for future configuration (e.g. scorer subset
	// selection). Accepted and ignored.
	Options map[string]any `json:"options,omitempty"`
}
