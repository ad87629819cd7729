package press

import (
	"strings"
	"testing"
	"time"
)

var digestNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func TestGenerator_Run_Empty(t *testing.T) {
	generator := NewGenerator()

	got := generator.Run(nil, digestNow)

	expected := "Daily M&A Radar — 2024-05-01\n\nNo new keyword matches today."
	if got != expected {
		t.Errorf("Expected empty digest %q, got %q", expected, got)
	}
}

func TestGenerator_Run_RoundTripFields(t *testing.T) {
	generator := NewGenerator()

	published := time.Date(2024, 4, 30, 14, 0, 0, 0, time.UTC)
	items := []Item{
		{
			URL:         "https://www.globenewswire.com/news/release-1",
			Source:      SourceGlobeNewswire,
			Title:       "Acme Corp announces definitive agreement",
			PublishedAt: &published,
			Snippet:     "Acme Corp today announced it has entered into a definitive agreement",
			Matched:     []string{"definitive agreement", "merger"},
			Score:       7,
		},
	}

	got := generator.Run(items, digestNow)

	for _, want := range []string{
		"- Acme Corp announces definitive agreement",
		"  https://www.globenewswire.com/news/release-1",
		"  Published: 2024-04-30T14:00:00Z",
		"  Matched: definitive agreement, merger (score 7)",
		"  Snippet: Acme Corp today announced it has entered into a definitive agreement",
		"== GlobeNewswire ==",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected digest to contain %q, got:\n%s", want, got)
		}
	}
}

func TestGenerator_Run_GroupsBySourceInSortOrder(t *testing.T) {
	generator := NewGenerator()

	items := []Item{
		{URL: "https://a.example/2", Source: SourceBusinessWire, Title: "Low score item headline", Matched: []string{"merger"}, Score: 2},
		{URL: "https://b.example/1", Source: SourcePRNewswire, Title: "Mid score item headline", Matched: []string{"acquisition"}, Score: 3},
		{URL: "https://a.example/1", Source: SourceBusinessWire, Title: "Top score item headline", Matched: []string{"definitive agreement"}, Score: 5},
	}

	got := generator.Run(items, digestNow)
	lines := strings.Split(got, "\n")

	var sections []string
	var titles []string
	for _, line := range lines {
		if strings.HasPrefix(line, "== ") {
			sections = append(sections, line)
		}
		if strings.HasPrefix(line, "- ") {
			titles = append(titles, line)
		}
	}

	// Descending score order: BusinessWire(5), PRNewswire(3), BusinessWire(2).
	// Grouping follows the sort order, so BusinessWire appears twice.
	expectedSections := []string{"== BusinessWire ==", "== PRNewswire ==", "== BusinessWire =="}
	if len(sections) != len(expectedSections) {
		t.Fatalf("Expected %d section headers, got %d:\n%s", len(expectedSections), len(sections), got)
	}
	for i, want := range expectedSections {
		if sections[i] != want {
			t.Errorf("Section %d: expected %q, got %q", i, want, sections[i])
		}
	}

	expectedTitles := []string{"- Top score item headline", "- Mid score item headline", "- Low score item headline"}
	for i, want := range expectedTitles {
		if titles[i] != want {
			t.Errorf("Title %d: expected %q, got %q", i, want, titles[i])
		}
	}
}

func TestGenerator_Run_UndatedSortsAfterDatedWithinScore(t *testing.T) {
	generator := NewGenerator()

	published := time.Date(2024, 4, 29, 8, 0, 0, 0, time.UTC)
	items := []Item{
		{URL: "https://a.example/undated", Source: SourceBusinessWire, Title: "Undated release headline", Matched: []string{"merger"}, Score: 2},
		{URL: "https://a.example/dated", Source: SourceBusinessWire, Title: "Dated release headline", PublishedAt: &published, Matched: []string{"merger"}, Score: 2},
	}

	got := generator.Run(items, digestNow)

	dated := strings.Index(got, "Dated release headline")
	undated := strings.Index(got, "Undated release headline")
	if dated == -1 || undated == -1 {
		t.Fatalf("Expected both items in digest, got:\n%s", got)
	}
	// Empty-string tie-break: the undated item sorts last in the band
	if dated > undated {
		t.Errorf("Expected dated item before undated item at equal score, got:\n%s", got)
	}
}

func TestGenerator_Run_OmitsEmptyOptionalLines(t *testing.T) {
	generator := NewGenerator()

	items := []Item{
		{URL: "https://a.example/1", Source: SourceBusinessWire, Title: "Plain listing item headline", Matched: []string{"merger"}, Score: 2},
	}

	got := generator.Run(items, digestNow)

	if strings.Contains(got, "Published:") {
		t.Errorf("Expected no Published line for undated item, got:\n%s", got)
	}
	if strings.Contains(got, "Snippet:") {
		t.Errorf("Expected no Snippet line for item without snippet, got:\n%s", got)
	}
}
