package vocab

import (
	"strings"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const (
	pairSeparator       = "-"
	definitionSeparator = " - "
)

// ParseVocabulary turns "word - definition" lines into pairs. Every hyphen
// splits the line; the first part is the word and the rest are joined back
// into the definition with " - ". Blank lines, lines without a hyphen and
// lines with an empty word are dropped.
func ParseVocabulary(text string) []domain.WordPair {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	pairs := make([]domain.WordPair, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, pairSeparator)
		if len(parts) < 2 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if parts[0] == "" {
			continue
		}

		pairs = append(pairs, domain.WordPair{
			Word:       parts[0],
			Definition: strings.Join(parts[1:], definitionSeparator),
		})
	}

	return pairs
}
