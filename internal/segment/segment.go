package segment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// ErrModelUnavailable is returned when the sentence model cannot be loaded.
var ErrModelUnavailable = errors.New("sentence model unavailable")

var (
	modelOnce sync.Once
	model     *sentences.DefaultSentenceTokenizer
	modelErr  error

	wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+(?:[.,]\p{N}+)*|[^\s\p{L}\p{N}]`)
)

// loadModel builds the English Punkt model on first use. It is read-only afterwards.
func loadModel() (*sentences.DefaultSentenceTokenizer, error) {
	modelOnce.Do(func() {
		model, modelErr = english.NewSentenceTokenizer(nil)
		if modelErr != nil {
			modelErr = fmt.Errorf("%w: %v", ErrModelUnavailable, modelErr)
		}
	})
	return model, modelErr
}

// Sentences splits text into sentences using abbreviation-aware Punkt rules.
// Surrounding whitespace is trimmed and blank sentences are dropped.
func Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	tok, err := loadModel()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range tok.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out, nil
}

// Words splits text into word, number and punctuation tokens.
// Case is preserved; callers lowercase when they need to.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}
