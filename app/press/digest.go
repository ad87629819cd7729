package press

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const noMatchesLine = "No new keyword matches today."

// Generator renders the plain-text digest handed to the notifier.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders newHits into the digest body. Items are sorted descending
// by score, then by the publish timestamp rendered as a string (absent
// dates sort as the empty string, i.e. after dated items within a score
// band). Source section headers are emitted whenever the source changes
// from the previous line, so grouping falls out of the sort order.
func (g *Generator) Run(newHits []Item, now time.Time) string {
	lines := []string{
		fmt.Sprintf("Daily M&A Radar — %s", now.Format("2006-01-02")),
		"",
	}

	if len(newHits) == 0 {
		lines = append(lines, noMatchesLine)
		return strings.Join(lines, "\n")
	}

	items := make([]Item, len(newHits))
	copy(items, newHits)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return publishedString(items[i]) > publishedString(items[j])
	})

	var currentSource Source
	for _, item := range items {
		if item.Source != currentSource {
			currentSource = item.Source
			lines = append(lines, "", fmt.Sprintf("== %s ==", currentSource))
		}

		lines = append(lines, fmt.Sprintf("- %s", item.Title))
		lines = append(lines, fmt.Sprintf("  %s", item.URL))
		if pub := publishedString(item); pub != "" {
			lines = append(lines, fmt.Sprintf("  Published: %s", pub))
		}
		if len(item.Matched) > 0 {
			lines = append(lines, fmt.Sprintf("  Matched: %s (score %d)",
				strings.Join(item.Matched, ", "), item.Score))
		}
		if item.Snippet != "" {
			lines = append(lines, fmt.Sprintf("  Snippet: %s", item.Snippet))
		}
	}

	return strings.Join(lines, "\n")
}

func publishedString(item Item) string {
	if item.PublishedAt == nil {
		return ""
	}
	return item.PublishedAt.Format(time.RFC3339)
}
