package sources

import (
	"context"
	"strings"

	"pressradar/app/config"
	"pressradar/app/press"
)

// Adapter produces normalized items from one upstream source's raw
// payload. A failing adapter yields zero items for its source; it never
// aborts the run.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context) ([]press.Item, error)
}

// NewAdapters builds the three press-release adapters from the scan
// profile, in the fixed source order the pipeline merges by.
func NewAdapters(client *Client, scanCfg *config.ScanConfig) []Adapter {
	return []Adapter{
		NewBusinessWireAdapter(client, scanCfg.Sources.BusinessWire),
		NewPRNewswireAdapter(client, scanCfg.Sources.PRNewswire),
		NewGlobeNewswireAdapter(client, scanCfg.Sources.GlobeNewswireJSON),
	}
}

// resolveLink resolves a possibly relative href against the source's
// canonical base URL.
func resolveLink(href, baseURL string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + href
}

// dedupeByURL keeps the first occurrence of every URL, preserving order.
func dedupeByURL(items []press.Item) []press.Item {
	seen := make(map[string]struct{}, len(items))
	uniq := make([]press.Item, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.URL]; ok {
			continue
		}
		seen[item.URL] = struct{}{}
		uniq = append(uniq, item)
	}
	return uniq
}

// limitItems truncates items to the source's per-run cap.
func limitItems(items []press.Item, limit int) []press.Item {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
