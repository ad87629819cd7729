package database

import (
	"time"

	"pressradar/app/press"
)

// SeenItemRepository is the idempotency gate for notification: a URL is
// recorded once, on the run that first matched it.
type SeenItemRepository interface {
	// InsertIfAbsent records item unless its URL is already on the
	// ledger. It returns true when the row was inserted (the item is
	// new) and false when the URL was already present.
	InsertIfAbsent(item press.Item, firstSeen time.Time) (bool, error)

	GetCount() (int, error)
	GetRecent(limit int) ([]SeenItem, error)
}
