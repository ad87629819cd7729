package sources

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pressradar/app/press"
)

// HTMLLinkAdapter scrapes a newsroom listing page: it collects every
// anchor whose path matches the source's article-path marker, keeping
// the anchor text as the title. Listing pages carry neither publish
// dates nor teasers, so PublishedAt and Snippet stay empty.
type HTMLLinkAdapter struct {
	client      *Client
	source      press.Source
	url         string
	baseURL     string
	pathMarker  string
	linkSuffix  string // optional, e.g. ".html"
	minTitleLen int
	maxItems    int
}

func NewBusinessWireAdapter(client *Client, url string) *HTMLLinkAdapter {
	return &HTMLLinkAdapter{
		client:      client,
		source:      press.SourceBusinessWire,
		url:         url,
		baseURL:     "https://www.businesswire.com",
		pathMarker:  "/news/home/",
		minTitleLen: 12,
		maxItems:    50,
	}
}

func NewPRNewswireAdapter(client *Client, url string) *HTMLLinkAdapter {
	return &HTMLLinkAdapter{
		client:      client,
		source:      press.SourcePRNewswire,
		url:         url,
		baseURL:     "https://www.prnewswire.com",
		pathMarker:  "/news-releases/",
		linkSuffix:  ".html",
		minTitleLen: 13,
		maxItems:    60,
	}
}

func (a *HTMLLinkAdapter) Name() string {
	return string(a.source)
}

// Fetch retrieves the listing page and extracts release links. The page
// structure changes over time, so selection is deliberately loose: any
// anchor with a plausible article path and a title-length heuristic.
func (a *HTMLLinkAdapter) Fetch(ctx context.Context) ([]press.Item, error) {
	data, err := a.client.Get(ctx, a.url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var items []press.Item
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, a.pathMarker) {
			return
		}
		if a.linkSuffix != "" && !strings.HasSuffix(href, a.linkSuffix) {
			return
		}

		title := press.NormalizeWhitespace(sel.Text())
		if len(title) < a.minTitleLen {
			return
		}

		items = append(items, press.Item{
			URL:    resolveLink(href, a.baseURL),
			Source: a.source,
			Title:  title,
		})
	})

	return limitItems(dedupeByURL(items), a.maxItems), nil
}
