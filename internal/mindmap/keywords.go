package mindmap

import (
	"regexp"
	"sort"
	"strings"

	"studymate/internal/domain"
)

var (
	// wordRun matches maximal runs of Unicode word characters, so an accented
	// letter is part of the word rather than a boundary.
	wordRun     = regexp.MustCompile(`[\p{L}\p{N}\p{M}_]+`)
	keywordWord = regexp.MustCompile(`^[a-z]{4,}$`)
)

// Keywords returns the limit most frequent words of four or more ASCII
// letters in text, lowercased. A word containing any other character, such
// as "zürich" or "plate2", is not a keyword at all. Words with equal counts
// are ordered by their first occurrence.
func Keywords(text string, limit int) []domain.Term {
	if limit <= 0 {
		return nil
	}
	counts := map[string]int{}
	var order []string
	for _, w := range wordRun.FindAllString(strings.ToLower(text), -1) {
		if !keywordWord.MatchString(w) {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if limit > len(order) {
		limit = len(order)
	}
	terms := make([]domain.Term, limit)
	for i, w := range order[:limit] {
		terms[i] = domain.Term{Word: w, Count: counts[w]}
	}
	return terms
}
