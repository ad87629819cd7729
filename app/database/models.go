package database

import (
	"time"
)

// SeenItem mirrors one row of the seen_items ledger. Rows are created
// exactly once per URL and never updated or deleted.
type SeenItem struct {
	URL         string
	Source      string
	Title       string
	PublishedAt string // ISO-8601, empty when the source had no date
	Snippet     string
	Matched     string // comma-joined keyword list
	Score       int
	FirstSeenAt time.Time
}
