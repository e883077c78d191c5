package linkcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestProbe_HeadSucceeds(t *testing.T) {
	var heads atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			heads.Add(1)
		}
	}))
	defer server.Close()

	c := New()
	if !c.Probe(context.Background(), server.URL, false) {
		t.Error("Probe() = false for a healthy server")
	}
	if heads.Load() != 1 {
		t.Errorf("HEAD requests = %d, want 1", heads.Load())
	}
}

func TestProbe_FallsBackToGet(t *testing.T) {
	var gets atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusMethodNotAllowed)
		case http.MethodGet:
			gets.Add(1)
		}
	}))
	defer server.Close()

	c := New()
	if !c.Probe(context.Background(), server.URL, false) {
		t.Error("Probe() = false when GET succeeds after HEAD is rejected")
	}
	if gets.Load() != 1 {
		t.Errorf("GET requests = %d, want 1", gets.Load())
	}
}

func TestProbe_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New()
	if c.Probe(context.Background(), server.URL, false) {
		t.Error("Probe() = true for a 404")
	}
}

func TestProbe_CachesResult(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	c := New()
	c.Probe(context.Background(), server.URL, false)
	c.Probe(context.Background(), server.URL, false)
	if requests.Load() != 1 {
		t.Errorf("requests = %d, want 1 (second probe served from cache)", requests.Load())
	}
}

func TestProbe_BypassCacheForcesFreshProbe(t *testing.T) {
	var requests atomic.Int32
	fail := atomic.Bool{}
	fail.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	c := New()
	if c.Probe(context.Background(), server.URL, false) {
		t.Fatal("Probe() = true while server is failing")
	}

	fail.Store(false)
	if c.Probe(context.Background(), server.URL, false) {
		t.Fatal("cached failure should persist without bypass")
	}
	if !c.Probe(context.Background(), server.URL, true) {
		t.Error("Probe() = false after recovery with bypassCache")
	}
	// The recovered result replaces the cached failure.
	if !c.Probe(context.Background(), server.URL, false) {
		t.Error("cache not updated by a bypass probe")
	}
}

func TestProbe_EmptyURL(t *testing.T) {
	c := New()
	if c.Probe(context.Background(), "", false) {
		t.Error("Probe(\"\") = true")
	}
}
