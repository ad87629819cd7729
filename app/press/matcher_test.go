package press

import (
	"reflect"
	"testing"
)

func TestMatcher_Run_Weights(t *testing.T) {
	matcher := NewMatcher()

	keywords := []string{"definitive agreement", "acquisition", "merger"}
	text := "Company enters definitive agreement for acquisition in merger of equals"

	matched, score := matcher.Run(text, keywords)

	expected := []string{"definitive agreement", "acquisition", "merger"}
	if !reflect.DeepEqual(matched, expected) {
		t.Errorf("Expected matched %v, got %v", expected, matched)
	}

	// 5 + 3 + 2
	if score != 10 {
		t.Errorf("Expected score 10, got %d", score)
	}
}

func TestMatcher_Run_CaseInsensitive(t *testing.T) {
	matcher := NewMatcher()

	matched, score := matcher.Run("DEFINITIVE AGREEMENT announced", []string{"Definitive Agreement"})

	if len(matched) != 1 {
		t.Fatalf("Expected 1 matched keyword, got %d", len(matched))
	}
	// The keyword is reported as configured, not as it appeared in text
	if matched[0] != "Definitive Agreement" {
		t.Errorf("Expected matched keyword 'Definitive Agreement', got '%s'", matched[0])
	}
	if score != 5 {
		t.Errorf("Expected score 5, got %d", score)
	}
}

func TestMatcher_Run_NoMatch(t *testing.T) {
	matcher := NewMatcher()

	matched, score := matcher.Run("Quarterly results announced", []string{"merger", "acquisition"})

	if len(matched) != 0 {
		t.Errorf("Expected no matches, got %v", matched)
	}
	if score != 0 {
		t.Errorf("Expected score 0, got %d", score)
	}
}

func TestMatcher_Run_RepeatedKeywordCountsOnce(t *testing.T) {
	matcher := NewMatcher()

	matched, score := matcher.Run("acquisition after acquisition after acquisition", []string{"acquisition"})

	if len(matched) != 1 {
		t.Errorf("Expected 1 matched keyword, got %d", len(matched))
	}
	if score != 3 {
		t.Errorf("Expected score 3, got %d", score)
	}
}

func TestMatcher_Run_PreservesKeywordOrder(t *testing.T) {
	matcher := NewMatcher()

	keywords := []string{"takeover", "merger", "acquisition"}
	matched, _ := matcher.Run("acquisition and merger and takeover", keywords)

	if !reflect.DeepEqual(matched, keywords) {
		t.Errorf("Expected matched keywords in config order %v, got %v", keywords, matched)
	}
}

func TestMatcher_Run_Idempotent(t *testing.T) {
	matcher := NewMatcher()

	keywords := []string{"definitive agreement", "merger"}
	text := "Definitive agreement reached in merger talks"

	matched1, score1 := matcher.Run(text, keywords)
	matched2, score2 := matcher.Run(text, keywords)

	if !reflect.DeepEqual(matched1, matched2) {
		t.Errorf("Expected identical matches on rerun, got %v and %v", matched1, matched2)
	}
	if score1 != score2 {
		t.Errorf("Expected identical scores on rerun, got %d and %d", score1, score2)
	}
}
