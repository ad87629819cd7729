package database

import (
	"fmt"
	"strings"
	"time"

	"pressradar/app/press"
)

var _ SeenItemRepository = (*SeenItemStore)(nil)

// SeenItemStore handles database operations for the seen_items ledger
type SeenItemStore struct {
	db *DB
}

func NewSeenItemStore(db *DB) *SeenItemStore {
	return &SeenItemStore{db: db}
}

// InsertIfAbsent performs the atomic check-and-insert on the url primary
// key. ON CONFLICT DO NOTHING makes the existence check and the insert a
// single statement, so concurrent callers and rerun invocations can
// never record the same URL twice.
func (r *SeenItemStore) InsertIfAbsent(item press.Item, firstSeen time.Time) (bool, error) {
	var publishedAt any
	if item.PublishedAt != nil {
		publishedAt = item.PublishedAt.Format(time.RFC3339)
	}
	var snippet any
	if item.Snippet != "" {
		snippet = item.Snippet
	}

	result, err := r.db.Exec(`
		INSERT INTO seen_items (url, source, title, published_at, snippet, matched, score, first_seen_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO NOTHING
	`, item.URL, string(item.Source), item.Title, publishedAt, snippet,
		strings.Join(item.Matched, ", "), item.Score, firstSeen.UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("failed to insert seen item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return affected > 0, nil
}

// GetCount returns the total number of recorded items
func (r *SeenItemStore) GetCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM seen_items").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get seen item count: %w", err)
	}
	return count, nil
}

// GetRecent returns the most recently recorded items
func (r *SeenItemStore) GetRecent(limit int) ([]SeenItem, error) {
	rows, err := r.db.Query(`
		SELECT url, source, title, COALESCE(published_at, ''),
		       COALESCE(snippet, ''), COALESCE(matched, ''), score, first_seen_at
		FROM seen_items
		ORDER BY first_seen_at DESC, url
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent items: %w", err)
	}
	defer rows.Close()

	var items []SeenItem
	for rows.Next() {
		var item SeenItem
		var firstSeen string
		err := rows.Scan(
			&item.URL, &item.Source, &item.Title, &item.PublishedAt,
			&item.Snippet, &item.Matched, &item.Score, &firstSeen,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seen item row: %w", err)
		}

		item.FirstSeenAt, err = time.Parse(time.RFC3339, firstSeen)
		if err != nil {
			return nil, fmt.Errorf("failed to parse first_seen_at: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seen item rows: %w", err)
	}

	return items, nil
}
