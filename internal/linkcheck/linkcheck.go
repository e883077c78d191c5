package linkcheck

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Checker probes resource links for reachability. Results are advisory UI
// hints only; an unreachable link never blocks task completion.
type Checker struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]bool
}

// New creates a Checker with a short per-probe timeout.
func New() *Checker {
	return &Checker{
		client: &http.Client{Timeout: 5 * time.Second},
		cache:  make(map[string]bool),
	}
}

// NewWithClient creates a Checker using the given HTTP client.
func NewWithClient(client *http.Client) *Checker {
	return &Checker{client: client, cache: make(map[string]bool)}
}

// Probe reports whether a URL answers. It tries HEAD first and falls back to
// GET, since some sites reject HEAD. Results are cached per URL; bypassCache
// forces a fresh probe and replaces the cached result.
func (c *Checker) Probe(ctx context.Context, url string, bypassCache bool) bool {
	if url == "" {
		return false
	}

	if !bypassCache {
		c.mu.Lock()
		cached, ok := c.cache[url]
		c.mu.Unlock()
		if ok {
			return cached
		}
	}

	reachable := c.request(ctx, http.MethodHead, url)
	if !reachable {
		reachable = c.request(ctx, http.MethodGet, url)
	}

	c.mu.Lock()
	c.cache[url] = reachable
	c.mu.Unlock()
	return reachable
}

func (c *Checker) request(ctx context.Context, method, url string) bool {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 400
}
