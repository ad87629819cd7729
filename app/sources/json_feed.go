package sources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/araddon/dateparse"

	"pressradar/app/press"
)

// Field-name tolerance tables. The endpoint's schema has drifted between
// revisions; probe the known casings and synonyms in order.
var (
	titleKeys     = []string{"Title", "title"}
	linkKeys      = []string{"Url", "url", "Link", "link"}
	publishedKeys = []string{"Published", "published", "PubDate", "pubDate"}
	snippetKeys   = []string{"Teaser", "teaser", "Summary", "summary"}
)

// JSONFeedAdapter consumes the GlobeNewswire JSON endpoint. The payload
// is either a bare list of entries or an object carrying the list under
// an "Items" key.
type JSONFeedAdapter struct {
	client   *Client
	url      string
	baseURL  string
	maxItems int
}

func NewGlobeNewswireAdapter(client *Client, url string) *JSONFeedAdapter {
	return &JSONFeedAdapter{
		client:   client,
		url:      url,
		baseURL:  "https://www.globenewswire.com",
		maxItems: 60,
	}
}

func (a *JSONFeedAdapter) Name() string {
	return string(press.SourceGlobeNewswire)
}

func (a *JSONFeedAdapter) Fetch(ctx context.Context) ([]press.Item, error) {
	data, err := a.client.Get(ctx, a.url)
	if err != nil {
		return nil, err
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return nil, err
	}

	items := make([]press.Item, 0, len(entries))
	for _, entry := range entries {
		item, ok := a.normalizeEntry(entry)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return limitItems(items, a.maxItems), nil
}

func decodeEntries(data []byte) ([]map[string]any, error) {
	var list []map[string]any
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapper struct {
		Items []map[string]any `json:"Items"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse JSON payload: %w", err)
	}
	return wrapper.Items, nil
}

// normalizeEntry maps one raw entry to an Item. Entries without a title
// or link are skipped; an unparseable publish date degrades to nil
// rather than dropping the entry.
func (a *JSONFeedAdapter) normalizeEntry(entry map[string]any) (press.Item, bool) {
	title := press.NormalizeWhitespace(stringField(entry, titleKeys))
	link := stringField(entry, linkKeys)
	if title == "" || link == "" {
		return press.Item{}, false
	}

	item := press.Item{
		URL:     resolveLink(link, a.baseURL),
		Source:  press.SourceGlobeNewswire,
		Title:   title,
		Snippet: press.NormalizeWhitespace(stringField(entry, snippetKeys)),
	}

	if raw := stringField(entry, publishedKeys); raw != "" {
		if ts, err := dateparse.ParseAny(raw); err == nil {
			item.PublishedAt = &ts
		}
	}

	return item, true
}

func stringField(entry map[string]any, keys []string) string {
	for _, key := range keys {
		if value, ok := entry[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
