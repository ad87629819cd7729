package press

import "strings"

// Keyword weights. "definitive agreement" is the strongest deal signal,
// "acquisition" a medium one, everything else baseline.
const (
	weightDefinitiveAgreement = 5
	weightAcquisition         = 3
	weightDefault             = 2
)

type Matcher struct{}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Run tests every keyword against text using case-insensitive substring
// containment. It returns the matched keywords in keyword order and the
// summed score. A keyword occurring multiple times in text counts once.
func (m *Matcher) Run(text string, keywords []string) ([]string, int) {
	lowered := strings.ToLower(text)

	var matched []string
	score := 0
	for _, kw := range keywords {
		if !strings.Contains(lowered, strings.ToLower(kw)) {
			continue
		}
		matched = append(matched, kw)

		switch strings.ToLower(kw) {
		case "definitive agreement":
			score += weightDefinitiveAgreement
		case "acquisition":
			score += weightAcquisition
		default:
			score += weightDefault
		}
	}

	return matched, score
}
