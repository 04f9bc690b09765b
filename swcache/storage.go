package swcache

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// CachedResponse is a stored GET response.
type CachedResponse struct {
	URL      string
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

// Storage persists cached responses grouped by cache name.
// GetResponse returns nil, nil when nothing is stored.
type Storage interface {
	GetResponse(ctx context.Context, cache, url string) (*CachedResponse, error)
	PutResponse(ctx context.Context, cache string, resp *CachedResponse) error
	DeleteResponse(ctx context.Context, cache, url string) error
	TrimCache(ctx context.Context, cache string, maxEntries int, maxAge time.Duration, now time.Time) error
}

func (c *CachedResponse) expired(exp *Expiration, now time.Time) bool {
	return exp != nil && exp.MaxAge > 0 && now.Sub(c.StoredAt) > exp.MaxAge
}

func (c *CachedResponse) toResponse(req *http.Request) *http.Response {
	header := c.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set(CacheHitHeader, "HIT")
	header.Set("Content-Length", strconv.Itoa(len(c.Body)))
	return &http.Response{
		Status:        strconv.Itoa(c.Status) + " " + http.StatusText(c.Status),
		StatusCode:    c.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(c.Body)),
		ContentLength: int64(len(c.Body)),
		Request:       req,
	}
}
