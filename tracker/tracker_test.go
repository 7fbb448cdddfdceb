package tracker

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sitegauge/sitegauge/config"
	"github.com/sitegauge/sitegauge/models"
)

func testRecord() *models.AnalysisRecord {
	return &models.AnalysisRecord{
		ID:        "track-1",
		URL:       "https://example.com",
		Status:    models.StatusCreated,
		StartedAt: time.Now().UTC(),
	}
}

func TestNew_NoopWhenUnconfigured(t *testing.T) {
	tr := New(config.TrackConfig{})
	if _, ok := tr.(Noop); !ok {
		t.Fatalf("tracker = %T, want Noop", tr)
	}
	if err := tr.Submitted(context.Background(), testRecord()); err != nil {
		t.Errorf("Noop.Submitted: %v", err)
	}
}

func TestWebhook_DeliversSignedEvent(t *testing.T) {
	const secret = "s3cret"

	var gotBody []byte
	var gotSig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get("X-Sitegauge-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := New(config.TrackConfig{URL: srv.URL, Secret: secret})
	if err := tr.Submitted(context.Background(), testRecord()); err != nil {
		t.Fatalf("Submitted: %v", err)
	}

	var ev Event
	if err := json.Unmarshal(gotBody, &ev); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if ev.Type != "analysis.submitted" || ev.AnalysisID != "track-1" {
		t.Errorf("event = %+v", ev)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if gotSig != want {
		t.Errorf("signature = %q, want %q", gotSig, want)
	}
}

func TestWebhook_CompletedCarriesOverallScore(t *testing.T) {
	var ev Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &ev)
	}))
	defer srv.Close()

	rec := testRecord()
	rec.Status = models.StatusCompleted
	rec.Results = &models.AnalysisResult{OverallScore: 84}

	tr := New(config.TrackConfig{URL: srv.URL})
	if err := tr.Completed(context.Background(), rec); err != nil {
		t.Fatalf("Completed: %v", err)
	}
	if ev.Type != "analysis.completed" {
		t.Errorf("type = %q", ev.Type)
	}
	if ev.Overall == nil || *ev.Overall != 84 {
		t.Errorf("overall = %v, want 84", ev.Overall)
	}
}

func TestWebhook_ErrorStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := New(config.TrackConfig{URL: srv.URL})
	if err := tr.Submitted(context.Background(), testRecord()); err == nil {
		t.Error("delivery to failing endpoint: want error (caller swallows it)")
	}
}
