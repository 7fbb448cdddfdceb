package models

import "time"

// AnalyzeResponse is the response for POST /api/v1/analyze.
// Submission always succeeds immediately; the pipeline runs in the background.
type AnalyzeResponse struct {
	AnalysisID string `json:"analysis_id"`
	Status     Status `json:"status"`
	URL        string `json:"url"`
	Message    string `json:"message"`
}

// StatusResponse is the response for GET /api/v1/analysis/:id.
// It mirrors the stored record without the report bytes.
type StatusResponse struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	Status    Status          `json:"status"`
	Progress  int             `json:"progress"`
	StartedAt time.Time       `json:"started_at"`
	Results   *AnalysisResult `json:"results"`
	Error     string          `json:"error,omitempty"`
}

// NewStatusResponse builds a StatusResponse from a stored record.
func NewStatusResponse(rec *AnalysisRecord) StatusResponse {
	return StatusResponse{
		ID:        rec.ID,
		URL:       rec.URL,
		Status:    rec.Status,
		Progress:  rec.Progress,
		StartedAt: rec.StartedAt,
		Results:   rec.Results,
		Error:     rec.Error,
	}
}

// AnalysisSummary is one entry in the GET /api/v1/analyses listing.
type AnalysisSummary struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	Status       Status    `json:"status"`
	Progress     int       `json:"progress"`
	StartedAt    time.Time `json:"started_at"`
	OverallScore *int      `json:"overall_score,omitempty"`
}

// ListResponse is the response for GET /api/v1/analyses.
type ListResponse struct {
	Count    int               `json:"count"`
	Analyses []AnalysisSummary `json:"analyses"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status     string     `json:"status"` // "healthy" or "degraded"
	Uptime     string     `json:"uptime"`
	QueueStats QueueStats `json:"queue_stats"`
	Version    string     `json:"version"`
}

// QueueStats reports the state of the analysis worker queue.
type QueueStats struct {
	Workers int `json:"workers"`
	Depth   int `json:"depth"`
	Cap     int `json:"cap"`
}
