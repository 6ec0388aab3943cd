package query

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// suggestionThreshold is the minimum Jaro-Winkler similarity for a
// name to show up in a "did you mean" hint.
const suggestionThreshold = 0.75

const maxSuggestions = 3

// foldName normalizes a name for comparison: accents removed, case
// folded, whitespace collapsed.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, s)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// matchNames returns the indices of candidates whose folded name
// equals the folded query.
func matchNames(query string, candidates []string) []int {
	folded := foldName(query)
	var matches []int
	for i, candidate := range candidates {
		if foldName(candidate) == folded {
			matches = append(matches, i)
		}
	}
	return matches
}

// suggestNames ranks candidates by Jaro-Winkler similarity to the
// query and returns the closest few above the threshold.
func suggestNames(query string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}
	folded := foldName(query)

	var ranked []scored
	for _, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(folded, foldName(candidate)))
		if score >= suggestionThreshold {
			ranked = append(ranked, scored{name: candidate, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var out []string
	for _, r := range ranked {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.name)
	}
	return out
}
