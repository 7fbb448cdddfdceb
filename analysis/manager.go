// Package analysis owns the lifecycle of one analysis run: the state machine
// from created to completed or failed, stage-by-stage persistence, and the
// background workers that execute submitted runs.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sitegauge/sitegauge/config"
	"github.com/sitegauge/sitegauge/fetcher"
	"github.com/sitegauge/sitegauge/markup"
	"github.com/sitegauge/sitegauge/models"
	"github.com/sitegauge/sitegauge/scoring"
	"github.com/sitegauge/sitegauge/store"
	"github.com/sitegauge/sitegauge/tracker"
)

// PageFetcher performs the single outbound fetch for a run.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Result, error)
}

// Renderer turns a completed result into the report artifact.
type Renderer interface {
	Render(result *models.AnalysisResult, id string) ([]byte, error)
}

// Progress checkpoints persisted after each of the first four scorers.
// The fifth scorer's completion is the progress-95 rendering transition.
var scorerCheckpoints = []int{40, 60, 80, 90}

// Manager drives analysis runs through the state machine and persists every
// stage to the result store. Submission returns immediately; workers started
// by Start execute the pipeline.
type Manager struct {
	store    store.Store
	fetcher  PageFetcher
	renderer Renderer
	tracker  tracker.Tracker
	queue    chan string
	workers  int
}

// New creates a Manager with the given collaborators.
func New(st store.Store, pf PageFetcher, r Renderer, tr tracker.Tracker, cfg config.WorkerConfig) *Manager {
	workers := cfg.Count
	if workers <= 0 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Manager{
		store:    st,
		fetcher:  pf,
		renderer: r,
		tracker:  tr,
		queue:    make(chan string, queueSize),
		workers:  workers,
	}
}

// Start launches the background workers. They run until ctx is cancelled;
// a run already in flight executes to completion or failure regardless.
func (m *Manager) Start(ctx context.Context) {
	for i := 0; i < m.workers; i++ {
		go m.worker(ctx)
	}
	slog.Info("analysis workers started", "workers", m.workers, "queue_cap", cap(m.queue))
}

func (m *Manager) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-m.queue:
			m.Run(ctx, id)
		}
	}
}

// Stats reports queue utilisation for the health endpoint.
func (m *Manager) Stats() models.QueueStats {
	return models.QueueStats{
		Workers: m.workers,
		Depth:   len(m.queue),
		Cap:     cap(m.queue),
	}
}

// Submit accepts a URL for analysis: it creates the record, persists it, and
// enqueues the run. It always returns quickly; pipeline failures surface on
// later status polls, never here. The returned record is in status created.
func (m *Manager) Submit(ctx context.Context, url string) (*models.AnalysisRecord, error) {
	rec := &models.AnalysisRecord{
		ID:        uuid.NewString(),
		URL:       url,
		Status:    models.StatusCreated,
		Progress:  0,
		StartedAt: time.Now().UTC(),
	}
	if err := m.store.Put(rec); err != nil {
		return nil, err
	}

	go m.notifySubmitted(rec)

	select {
	case m.queue <- rec.ID:
	default:
		// Queue saturated: the submission stands, the run fails.
		m.markFailed(rec, fmt.Errorf("analysis queue full"))
	}

	slog.Info("analysis submitted", "id", rec.ID, "url", url)
	return rec, nil
}

// Run executes the full pipeline for an already-persisted record. Panics and
// stage errors transition the record to failed with the cause recorded.
func (m *Manager) Run(ctx context.Context, id string) {
	rec, err := m.store.Get(id)
	if err != nil {
		slog.Error("cannot load submitted analysis", "id", id, "error", err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			m.markFailed(rec, fmt.Errorf("%v", r))
		}
	}()

	if err := m.run(ctx, rec); err != nil {
		m.markFailed(rec, err)
	}
}

// run is the happy path: fetch once, score five categories in fixed order
// with a persisted checkpoint after each, render, complete.
func (m *Manager) run(ctx context.Context, rec *models.AnalysisRecord) error {
	if err := m.advance(rec, models.StatusFetching, 10); err != nil {
		return err
	}

	in := scoring.Input{URL: rec.URL}
	fres, ferr := m.fetcher.Fetch(ctx, rec.URL)
	if ferr != nil {
		// Network-level failure is contained: every scorer reports a zero
		// score carrying the error text, and the run still completes.
		slog.Warn("fetch failed, scoring degraded", "id", rec.ID, "url", rec.URL, "error", ferr)
		in.FetchErr = ferr
		in.Doc = markup.Parse(nil)
	} else {
		in.Fetch = fres
		in.Doc = markup.Parse(fres.Body)
	}

	if err := m.advance(rec, models.StatusScoring, 20); err != nil {
		return err
	}

	result := &models.AnalysisResult{URL: rec.URL}
	for i, sc := range scoring.Scorers() {
		cs := sc.Score(in)
		result.SetCategory(sc.Name, &cs)
		if i < len(scorerCheckpoints) {
			if err := m.progress(rec, scorerCheckpoints[i]); err != nil {
				return err
			}
		}
	}
	result.AnalyzedAt = time.Now().UTC()
	result.OverallScore = scoring.Overall(result)

	rec.Results = result
	if err := m.advance(rec, models.StatusRendering, 95); err != nil {
		return err
	}

	pdf, err := m.renderer.Render(result, rec.ID)
	if err != nil {
		return err
	}

	rec.ReportPDF = pdf
	if err := m.advance(rec, models.StatusCompleted, 100); err != nil {
		return err
	}

	slog.Info("analysis completed",
		"id", rec.ID,
		"url", rec.URL,
		"overall_score", result.OverallScore,
		"degraded", ferr != nil,
	)
	go m.notifyCompleted(rec)
	return nil
}

// advance moves the record forward in the state machine and persists it.
func (m *Manager) advance(rec *models.AnalysisRecord, to models.Status, progress int) error {
	if !models.ValidTransition(rec.Status, to) {
		return fmt.Errorf("invalid status transition %s -> %s", rec.Status, to)
	}
	rec.Status = to
	rec.Progress = progress
	return m.store.Put(rec)
}

// progress persists a scoring checkpoint without a status change.
func (m *Manager) progress(rec *models.AnalysisRecord, progress int) error {
	rec.Progress = progress
	return m.store.Put(rec)
}

// markFailed transitions the record to failed with the cause recorded
// verbatim. Progress is left where it was; any partially attached result is
// discarded so a record never carries both a result and an error.
func (m *Manager) markFailed(rec *models.AnalysisRecord, cause error) {
	if rec.Status.Terminal() {
		return
	}
	rec.Status = models.StatusFailed
	rec.Error = cause.Error()
	rec.Results = nil
	rec.ReportPDF = nil
	if err := m.store.Put(rec); err != nil {
		slog.Error("cannot persist analysis failure", "id", rec.ID, "error", err)
	}
	slog.Error("analysis failed", "id", rec.ID, "url", rec.URL, "cause", cause)
	go m.notifyCompleted(rec)
}

// notifySubmitted and notifyCompleted are fire-and-forget: a tracking
// failure is logged and swallowed, it never touches the record.
func (m *Manager) notifySubmitted(rec *models.AnalysisRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.tracker.Submitted(ctx, rec); err != nil {
		slog.Warn("submission tracking failed", "id", rec.ID, "error", err)
	}
}

func (m *Manager) notifyCompleted(rec *models.AnalysisRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.tracker.Completed(ctx, rec); err != nil {
		slog.Warn("completion tracking failed", "id", rec.ID, "error", err)
	}
}
