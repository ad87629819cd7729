package press

import (
	"strings"
	"time"
)

// Source identifies one of the upstream press-release feeds.
type Source string

const (
	SourceBusinessWire  Source = "BusinessWire"
	SourcePRNewswire    Source = "PRNewswire"
	SourceGlobeNewswire Source = "GlobeNewswire"
)

// Item is a single discovered press release, normalized across sources.
// URL is the identity key: it deduplicates within a run and, through the
// seen-item ledger, across runs.
type Item struct {
	URL         string
	Source      Source
	Title       string
	PublishedAt *time.Time // nil when the source does not expose a date
	Snippet     string     // empty when the source does not expose a teaser
	Matched     []string   // matched keywords, in keyword-config order
	Score       int
}

// NormalizeWhitespace collapses all runs of whitespace to single spaces
// and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
