package swcache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	ManifestPath   = "/precache-manifest.json"
	revisionHeader = "X-Guides-Revision"
)

type PrecacheEntry struct {
	URL      string `json:"url"`
	Revision string `json:"revision,omitempty"`
}

// DefaultPrecache lists the pages that must be available offline.
func DefaultPrecache() []PrecacheEntry {
	return []PrecacheEntry{
		{URL: "index.html"},
		{URL: "restaurant.html"},
	}
}

// Precache fetches every entry relative to site into the precache cache.
// Entries whose stored revision is unchanged are skipped. It returns the
// number of entries fetched.
func (t *Transport) Precache(ctx context.Context, site *url.URL, entries []PrecacheEntry) (int, error) {
	if t.Storage == nil {
		return 0, fmt.Errorf("precache requires a storage")
	}

	fetched := 0
	for _, entry := range entries {
		ref, err := url.Parse(entry.URL)
		if err != nil {
			return fetched, fmt.Errorf("invalid precache url %q: %w", entry.URL, err)
		}
		target := site.ResolveReference(ref)
		key := precacheKey(target)

		if entry.Revision != "" {
			existing, err := t.Storage.GetResponse(ctx, CachePrecache, key)
			if err == nil && existing != nil && existing.Header.Get(revisionHeader) == entry.Revision {
				continue
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
		if err != nil {
			return fetched, err
		}
		resp, body, err := t.fetch(req)
		if err != nil {
			return fetched, fmt.Errorf("failed to precache %s: %w", target, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fetched, fmt.Errorf("failed to precache %s: unexpected status %d", target, resp.StatusCode)
		}

		header := resp.Header.Clone()
		if entry.Revision != "" {
			header.Set(revisionHeader, entry.Revision)
		}
		if err := t.Storage.PutResponse(ctx, CachePrecache, &CachedResponse{
			URL:      key,
			Status:   resp.StatusCode,
			Header:   header,
			Body:     body,
			StoredAt: t.now(),
		}); err != nil {
			return fetched, fmt.Errorf("failed to store %s: %w", key, err)
		}
		fetched++
	}
	return fetched, nil
}

// FetchManifest downloads the site's precache manifest. It bypasses the
// route table so a stale manifest is never served.
func (t *Transport) FetchManifest(ctx context.Context, site *url.URL) ([]PrecacheEntry, error) {
	target := site.ResolveReference(&url.URL{Path: ManifestPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, body, err := t.fetch(req)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, target)
	}

	var entries []PrecacheEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return entries, nil
}
