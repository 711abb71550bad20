package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/kamar"
)

// DefaultPageTTL is how long a cached page text is served before the page
// is read again.
const DefaultPageTTL = 24 * time.Hour

// Compile-time interface verification.
var _ kamar.PageReader = (*PageCache)(nil)

// PageCache is a kamar.PageReader that serves page texts from SQLite and
// reads through to the wrapped reader when a page is missing or stale.
// Failed reads are never cached. Database failures are logged and never
// fail a read the wrapped reader can serve.
type PageCache struct {
	db   *DB
	next kamar.PageReader

	// TTL is the maximum age of a served page. Zero means DefaultPageTTL.
	TTL time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives database failures. Nil discards them.
	Logger *slog.Logger
}

// NewPageCache creates a PageCache in front of next.
func NewPageCache(db *DB, next kamar.PageReader) *PageCache {
	return &PageCache{db: db, next: next, TTL: DefaultPageTTL, Now: time.Now}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}

// ReadPage returns the cached page for url when it is fresh, and reads,
// stores and returns it otherwise.
func (c *PageCache) ReadPage(ctx context.Context, url string) (*kamar.Page, error) {
	page, fetchedAt, err := c.findPage(ctx, url)
	switch {
	case err == nil && c.now().Sub(fetchedAt) < c.ttl():
		return page, nil
	case err != nil && kamar.ErrorCode(err) != kamar.ENOTFOUND:
		c.logger().Warn("page cache lookup failed", "url", url, "err", err)
	}

	page, err = c.next.ReadPage(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := c.savePage(ctx, page); err != nil {
		c.logger().Warn("page cache save failed", "url", url, "err", err)
	}
	return page, nil
}

func (c *PageCache) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Purge deletes pages fetched before the TTL and returns how many were
// removed.
func (c *PageCache) Purge(ctx context.Context) (int64, error) {
	cutoff := c.now().Add(-c.ttl()).UTC().Format(time.RFC3339)
	res, err := c.db.ExecContext(ctx, `DELETE FROM pages WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *PageCache) findPage(ctx context.Context, url string) (*kamar.Page, time.Time, error) {
	var page kamar.Page
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT url, title, text, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.URL, &page.Title, &page.Text, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, kamar.Errorf(kamar.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	t, err := parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, time.Time{}, err
	}
	return &page, t, nil
}

// savePage upserts page. An unchanged text only refreshes fetched_at.
func (c *PageCache) savePage(ctx context.Context, page *kamar.Page) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (url, title, text, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			text = CASE WHEN pages.content_hash = excluded.content_hash THEN pages.text ELSE excluded.text END,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.URL, page.Title, page.Text, hashContent(page.Text), c.now().UTC().Format(time.RFC3339))
	return err
}

func (c *PageCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *PageCache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultPageTTL
}
