package localdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"local-guides/swcache"
)

var _ swcache.Storage = (*DB)(nil)

func (d *DB) GetResponse(ctx context.Context, cache, url string) (*swcache.CachedResponse, error) {
	var (
		header   string
		storedAt int64
		resp     = swcache.CachedResponse{URL: url}
	)
	err := d.QueryRowContext(ctx, `SELECT status, header, body, stored_at FROM responses WHERE cache = ? AND url = ?`, cache, url).
		Scan(&resp.Status, &header, &resp.Body, &storedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached response: %w", err)
	}

	resp.Header = make(http.Header)
	if err := json.Unmarshal([]byte(header), &resp.Header); err != nil {
		return nil, fmt.Errorf("decoding cached header: %w", err)
	}
	resp.StoredAt = time.Unix(0, storedAt)
	return &resp, nil
}

func (d *DB) PutResponse(ctx context.Context, cache string, resp *swcache.CachedResponse) error {
	header, err := json.Marshal(resp.Header)
	if err != nil {
		return err
	}
	_, err = d.ExecContext(ctx, `INSERT OR REPLACE INTO responses (cache, url, status, header, body, stored_at) VALUES (?, ?, ?, ?, ?, ?)`,
		cache, resp.URL, resp.Status, string(header), resp.Body, resp.StoredAt.UnixNano())
	if err != nil {
		return fmt.Errorf("storing cached response: %w", err)
	}
	return nil
}

func (d *DB) DeleteResponse(ctx context.Context, cache, url string) error {
	_, err := d.ExecContext(ctx, `DELETE FROM responses WHERE cache = ? AND url = ?`, cache, url)
	return err
}

// TrimCache drops entries older than maxAge, then the oldest entries beyond
// maxEntries. Zero disables either limit.
func (d *DB) TrimCache(ctx context.Context, cache string, maxEntries int, maxAge time.Duration, now time.Time) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if maxAge > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM responses WHERE cache = ? AND stored_at < ?`,
			cache, now.Add(-maxAge).UnixNano()); err != nil {
			return fmt.Errorf("expiring %s: %w", cache, err)
		}
	}
	if maxEntries > 0 {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM responses
			WHERE cache = ? AND url NOT IN (
				SELECT url FROM responses WHERE cache = ? ORDER BY stored_at DESC, url DESC LIMIT ?
			)`, cache, cache, maxEntries); err != nil {
			return fmt.Errorf("trimming %s: %w", cache, err)
		}
	}
	return tx.Commit()
}
