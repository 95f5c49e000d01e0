package summarize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultTopWords is how many words the frequency fallback reports.
const DefaultTopWords = 5

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// stopWords is a closed list of common short English words excluded from
// frequency counting.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "day": {}, "get": {}, "has": {},
	"him": {}, "his": {}, "how": {}, "man": {}, "new": {}, "now": {},
	"old": {}, "see": {}, "two": {}, "way": {}, "who": {}, "boy": {},
	"did": {}, "its": {}, "let": {}, "put": {}, "say": {}, "she": {},
	"too": {}, "use": {},
}

// TopWords derives a deterministic summary from word frequencies. It never
// fails: given text with no qualifying tokens it still returns the header
// with an empty word list. Tokens are runs of 3+ letters, lowercased, with
// stop words removed; ties are broken by first appearance in the text.
func TopWords(text string, n int) string {
	if n <= 0 {
		n = DefaultTopWords
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range wordPattern.FindAllString(text, -1) {
		w = strings.ToLower(w)
		if _, skip := stopWords[w]; skip {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	// Stable sort keeps first-encountered order between equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	parts := make([]string, 0, len(order))
	for _, w := range order {
		parts = append(parts, fmt.Sprintf("%s (%d)", w, counts[w]))
	}
	return fmt.Sprintf("Top %d most frequent words: %s", n, strings.Join(parts, ", "))
}
