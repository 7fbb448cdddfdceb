package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sitegauge/sitegauge/config"
)

func testConfig() config.FetcherConfig {
	return config.FetcherConfig{
		Timeout:      5 * time.Second,
		MaxBodyBytes: 10 * 1024 * 1024,
	}
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := New(testConfig())
	res, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.StatusCode != 200 {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
	if string(res.Body) != "<html><body>ok</body></html>" {
		t.Errorf("body = %q", res.Body)
	}
	if res.Headers.Get("X-Frame-Options") != "DENY" {
		t.Errorf("headers not captured: %v", res.Headers)
	}
	if res.ElapsedMs < 0 {
		t.Errorf("elapsed = %d, want >= 0", res.ElapsedMs)
	}
}

func TestFetch_ErrorStatusesAreResults(t *testing.T) {
	for _, status := range []int{404, 500, 503} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		f := New(testConfig())
		res, err := f.Fetch(context.Background(), srv.URL)
		srv.Close()

		if err != nil {
			t.Errorf("status %d: Fetch returned error %v, want result", status, err)
			continue
		}
		if res.StatusCode != status {
			t.Errorf("status = %d, want %d", res.StatusCode, status)
		}
	}
}

func TestFetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	f := New(testConfig())
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch against closed server: want error")
	}
	var fe *Error
	if !errors.As(err, &fe) {
		t.Errorf("error type = %T, want *fetcher.Error", err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	cfg := testConfig()
	cfg.Timeout = 100 * time.Millisecond
	f := New(cfg)

	start := time.Now()
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch against stalled server: want timeout error")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("timeout not bounded: took %s", elapsed)
	}
	var fe *Error
	if !errors.As(err, &fe) {
		t.Errorf("error type = %T, want *fetcher.Error", err)
	}
}

func TestFetch_BodyCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxBodyBytes = 1024
	f := New(cfg)

	res, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(res.Body) != 1024 {
		t.Errorf("body length = %d, want capped at 1024", len(res.Body))
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	f := New(testConfig())
	_, err := f.Fetch(context.Background(), "http://[::1]:namedport")
	if err == nil {
		t.Fatal("Fetch with malformed URL: want error")
	}
}
