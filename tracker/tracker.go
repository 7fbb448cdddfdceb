// Package tracker reports analysis activity to an external collaborator.
// Every call is best-effort: callers log a failed delivery and move on, a
// tracking error never changes an analysis record.
package tracker

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sitegauge/sitegauge/config"
	"github.com/sitegauge/sitegauge/models"
)

// Tracker receives lifecycle notifications for analysis runs.
type Tracker interface {
	// Submitted reports a newly accepted analysis.
	Submitted(ctx context.Context, rec *models.AnalysisRecord) error

	// Completed reports a finished analysis (completed or failed).
	Completed(ctx context.Context, rec *models.AnalysisRecord) error
}

// Event is the payload sent to the tracking endpoint.
type Event struct {
	Type       string        `json:"type"` // "analysis.submitted" or "analysis.completed"
	AnalysisID string        `json:"analysis_id"`
	URL        string        `json:"url"`
	Status     models.Status `json:"status"`
	Timestamp  int64         `json:"timestamp"`
	Overall    *int          `json:"overall_score,omitempty"`
}

// Noop is a Tracker that does nothing, used when tracking is unconfigured.
type Noop struct{}

func (Noop) Submitted(context.Context, *models.AnalysisRecord) error { return nil }
func (Noop) Completed(context.Context, *models.AnalysisRecord) error { return nil }

// Webhook delivers events as signed JSON POSTs.
// The request body is signed with HMAC-SHA256 if a secret is configured.
// Header: X-Sitegauge-Signature: sha256=<hex>
type Webhook struct {
	url    string
	secret string
	client *http.Client
}

// New returns a Webhook tracker, or Noop when no URL is configured.
func New(cfg config.TrackConfig) Tracker {
	if cfg.URL == "" {
		return Noop{}
	}
	return &Webhook{
		url:    cfg.URL,
		secret: cfg.Secret,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) Submitted(ctx context.Context, rec *models.AnalysisRecord) error {
	return w.deliver(ctx, &Event{
		Type:       "analysis.submitted",
		AnalysisID: rec.ID,
		URL:        rec.URL,
		Status:     rec.Status,
		Timestamp:  time.Now().Unix(),
	})
}

func (w *Webhook) Completed(ctx context.Context, rec *models.AnalysisRecord) error {
	ev := &Event{
		Type:       "analysis.completed",
		AnalysisID: rec.ID,
		URL:        rec.URL,
		Status:     rec.Status,
		Timestamp:  time.Now().Unix(),
	}
	if rec.Results != nil {
		overall := rec.Results.OverallScore
		ev.Overall = &overall
	}
	return w.deliver(ctx, ev)
}

// deliver sends one event synchronously.
func (w *Webhook) deliver(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("tracker: marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("tracker: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Sitegauge-Tracker/1.0")

	if w.secret != "" {
		mac := hmac.New(sha256.New, []byte(w.secret))
		mac.Write(body)
		sig := hex.EncodeToString(mac.Sum(nil))
		req.Header.Set("X-Sitegauge-Signature", "sha256="+sig)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("tracker: deliver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("tracker: endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
