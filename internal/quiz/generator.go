package quiz

import (
	"strings"
	"unicode"

	"studymate/internal/domain"
	"studymate/internal/random"
	"studymate/internal/segment"
)

// Config tunes blank generation.
type Config struct {
	Placeholder string
	// ShortSentenceTokens is the largest token count a sentence may have and
	// still be skipped.
	ShortSentenceTokens int
}

// DefaultConfig masks with four underscores and skips sentences of five tokens or fewer.
func DefaultConfig() Config {
	return Config{Placeholder: "____", ShortSentenceTokens: 5}
}

// Generator builds fill-in-the-blank questions from randomly sampled sentences.
type Generator struct {
	cfg Config
	rnd random.Source
}

// NewGenerator creates a generator drawing sentences and blanks from rnd.
func NewGenerator(cfg Config, rnd random.Source) *Generator {
	if cfg.Placeholder == "" {
		cfg.Placeholder = "____"
	}
	return &Generator{cfg: cfg, rnd: rnd}
}

// Generate draws min(count, sentences) sentences with replacement and masks
// one whitespace token in each. Draws that land on a short sentence produce
// nothing and are not retried, so fewer than count items may come back.
func (g *Generator) Generate(text string, count int) ([]domain.QuizItem, error) {
	sentences, err := segment.Sentences(text)
	if err != nil {
		return nil, err
	}
	rounds := min(count, len(sentences))
	var items []domain.QuizItem
	for i := 0; i < rounds; i++ {
		sent := sentences[g.rnd.IntN(len(sentences))]
		words := strings.Fields(sent)
		if len(words) <= g.cfg.ShortSentenceTokens {
			continue
		}
		blank := g.rnd.IntN(len(words))
		answer := words[blank]
		words[blank] = g.cfg.Placeholder
		items = append(items, domain.QuizItem{
			Question: strings.Join(words, " "),
			Answer:   answer,
			Sentence: sent,
		})
	}
	return items, nil
}

// CheckAnswer reports whether response matches the item's answer, ignoring
// case and any punctuation clinging to either side.
func CheckAnswer(item domain.QuizItem, response string) bool {
	want, got := trimPunct(item.Answer), trimPunct(strings.TrimSpace(response))
	if want == "" {
		want, got = item.Answer, strings.TrimSpace(response)
	}
	if got == "" {
		return false
	}
	return strings.EqualFold(want, got)
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
