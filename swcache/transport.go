package swcache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Transport applies a route table to GET requests before they reach Base.
type Transport struct {
	Base    http.RoundTripper
	Storage Storage
	Routes  []Route
	// Origin is the site's own origin; other origins only match routes
	// anchored at the start of the URL.
	Origin *url.URL
	Now    func() time.Time
	Logger *log.Logger

	wg sync.WaitGroup
}

func New(storage Storage, base http.RoundTripper) *Transport {
	return &Transport{
		Base:    base,
		Storage: storage,
		Routes:  DefaultRoutes(),
	}
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || t.Storage == nil {
		return t.base().RoundTrip(req)
	}

	if cached := t.lookup(req.Context(), CachePrecache, precacheKey(req.URL), nil); cached != nil {
		return cached.toResponse(req), nil
	}

	route, ok := t.match(req.URL)
	if !ok {
		return t.base().RoundTrip(req)
	}

	switch route.Strategy {
	case CacheFirst:
		return t.cacheFirst(req, route)
	case StaleWhileRevalidate:
		return t.staleWhileRevalidate(req, route)
	case NetworkFirst:
		return t.networkFirst(req, route)
	default:
		return nil, fmt.Errorf("unknown caching strategy %q for route %s", route.Strategy, route.Name)
	}
}

// Wait blocks until background revalidations have finished.
func (t *Transport) Wait() {
	t.wg.Wait()
}

func (t *Transport) match(u *url.URL) (Route, bool) {
	for _, route := range t.Routes {
		if route.Match(u, t.Origin) {
			return route, true
		}
	}
	return Route{}, false
}

func (t *Transport) cacheFirst(req *http.Request, route Route) (*http.Response, error) {
	key := req.URL.String()
	if cached := t.lookup(req.Context(), route.Cache, key, route.Expiration); cached != nil {
		return cached.toResponse(req), nil
	}
	return t.fetchAndStore(req, route)
}

func (t *Transport) networkFirst(req *http.Request, route Route) (*http.Response, error) {
	resp, err := t.fetchAndStore(req, route)
	if err == nil {
		return resp, nil
	}
	// A client timeout has already cancelled req's context.
	ctx := context.WithoutCancel(req.Context())
	if cached := t.lookup(ctx, route.Cache, req.URL.String(), route.Expiration); cached != nil {
		t.logf("Warning: network failed for %s, serving %s cache: %v", req.URL, route.Cache, err)
		return cached.toResponse(req), nil
	}
	return nil, err
}

func (t *Transport) staleWhileRevalidate(req *http.Request, route Route) (*http.Response, error) {
	cached := t.lookup(req.Context(), route.Cache, req.URL.String(), route.Expiration)
	if cached == nil {
		return t.fetchAndStore(req, route)
	}

	refresh := req.Clone(context.WithoutCancel(req.Context()))
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		resp, err := t.fetchAndStore(refresh, route)
		if err != nil {
			t.logf("Warning: failed to revalidate %s: %v", refresh.URL, err)
			return
		}
		resp.Body.Close()
	}()
	return cached.toResponse(req), nil
}

// fetchAndStore goes to the network and keeps 200 responses.
func (t *Transport) fetchAndStore(req *http.Request, route Route) (*http.Response, error) {
	resp, body, err := t.fetch(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK {
		t.store(context.WithoutCancel(req.Context()), route.Cache, route.Expiration, &CachedResponse{
			URL:      req.URL.String(),
			Status:   resp.StatusCode,
			Header:   resp.Header.Clone(),
			Body:     body,
			StoredAt: t.now(),
		})
	}
	return resp, nil
}

func (t *Transport) fetch(req *http.Request) (*http.Response, []byte, error) {
	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", req.URL, err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, body, nil
}

func (t *Transport) lookup(ctx context.Context, cache, key string, exp *Expiration) *CachedResponse {
	cached, err := t.Storage.GetResponse(ctx, cache, key)
	if err != nil {
		t.logf("Warning: failed to read %s cache: %v", cache, err)
		return nil
	}
	if cached == nil {
		return nil
	}
	if cached.expired(exp, t.now()) {
		if err := t.Storage.DeleteResponse(ctx, cache, key); err != nil {
			t.logf("Warning: failed to drop expired %s: %v", key, err)
		}
		return nil
	}
	return cached
}

func (t *Transport) store(ctx context.Context, cache string, exp *Expiration, resp *CachedResponse) {
	if err := t.Storage.PutResponse(ctx, cache, resp); err != nil {
		t.logf("Warning: failed to cache %s: %v", resp.URL, err)
		return
	}
	if exp == nil {
		return
	}
	if err := t.Storage.TrimCache(ctx, cache, exp.MaxEntries, exp.MaxAge, t.now()); err != nil {
		t.logf("Warning: failed to trim %s cache: %v", cache, err)
	}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t *Transport) logf(format string, args ...interface{}) {
	if t.Logger != nil {
		t.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// precacheKey maps directory URLs onto their index page.
func precacheKey(u *url.URL) string {
	key := *u
	key.Fragment = ""
	if key.Path == "" || strings.HasSuffix(key.Path, "/") {
		key.Path += "index.html"
	}
	return key.String()
}
