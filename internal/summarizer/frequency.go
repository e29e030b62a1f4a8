package summarizer

import (
	"sort"
	"strings"

	"studymate/internal/segment"
)

// FrequencySummarizer ranks sentences by the summed document frequency of their tokens.
type FrequencySummarizer struct{}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{}
}

// Summarize returns up to maxSentences sentences, highest score first.
// Sentences with equal scores keep their document order.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) ([]string, error) {
	if maxSentences <= 0 {
		return nil, nil
	}
	sentences, err := segment.Sentences(text)
	if err != nil {
		return nil, err
	}
	if len(sentences) == 0 {
		return nil, nil
	}
	// Compute word frequencies over the whole text, no stopword filtering
	freq := map[string]int{}
	for _, tok := range tokens(text) {
		freq[tok]++
	}
	// Score sentences
	type pair struct {
		idx   int
		score int
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		sscore := 0
		for _, tok := range tokens(sent) {
			sscore += freq[tok]
		}
		scores[i] = pair{i, sscore}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	out := make([]string, 0, maxSentences)
	for _, p := range scores[:maxSentences] {
		out = append(out, sentences[p.idx])
	}
	return out, nil
}

func tokens(text string) []string {
	return segment.Words(strings.ToLower(text))
}
