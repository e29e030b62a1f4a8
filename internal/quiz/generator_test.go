package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/domain"
	"studymate/internal/random"
	"studymate/internal/segment"
)

const longText = `The mitochondria is the powerhouse of the cell. Ribosomes assemble proteins from amino acids in the cytoplasm.
The nucleus stores genetic material inside a double membrane. Cell walls give plant cells a rigid and protective shape.`

const shortText = "Cells divide. Plants grow fast. Water flows downhill quickly. Dogs bark at night."

// scriptedSource returns the queued IntN results in order.
type scriptedSource struct {
	ints []int
}

func (s *scriptedSource) Float64() float64 { return 0 }

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func TestGenerateMaskInvariant(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		items, err := NewGenerator(DefaultConfig(), random.New(seed)).Generate(longText, 5)
		require.NoError(t, err)
		for _, it := range items {
			orig := strings.Fields(it.Sentence)
			masked := strings.Fields(it.Question)
			require.Equal(t, len(orig), len(masked))
			diffs := 0
			for i := range orig {
				if orig[i] != masked[i] {
					diffs++
					assert.Equal(t, "____", masked[i])
					assert.Equal(t, orig[i], it.Answer)
				}
			}
			if it.Answer == "____" {
				continue
			}
			assert.Equal(t, 1, diffs)
			assert.NotEmpty(t, it.Answer)
		}
	}
}

func TestGenerateCountBound(t *testing.T) {
	texts := []string{"", longText, shortText, longText + " " + shortText}
	for _, text := range texts {
		sentences, err := segment.Sentences(text)
		require.NoError(t, err)
		for _, n := range []int{0, 1, 3, 5, 20} {
			items, err := NewGenerator(DefaultConfig(), random.New(11)).Generate(text, n)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(items), min(n, len(sentences)))
		}
	}
}

func TestGenerateAllShortSentencesYieldsNothing(t *testing.T) {
	for _, n := range []int{1, 4, 10} {
		items, err := NewGenerator(DefaultConfig(), random.New(2)).Generate(shortText, n)
		require.NoError(t, err)
		assert.Empty(t, items)
	}
}

func TestGenerateShortDrawsAreNotRetried(t *testing.T) {
	text := "Tiny one here. " + "This sentence is long enough to become a question."
	// Sentence draws land on the short sentence first, then the long one.
	src := &scriptedSource{ints: []int{0, 1, 3, 0, 1, 0}}
	items, err := NewGenerator(DefaultConfig(), src).Generate(text, 4)
	require.NoError(t, err)
	// Only two sentences exist, so two rounds run: one short, one long.
	require.Len(t, items, 1)
	assert.Equal(t, "This sentence is ____ enough to become a question.", items[0].Question)
	assert.Equal(t, "long", items[0].Answer)
}

func TestGenerateSameSentenceTwice(t *testing.T) {
	text := "Alpha beta gamma delta epsilon zeta eta. Short one."
	src := &scriptedSource{ints: []int{0, 0, 0, 6}}
	items, err := NewGenerator(DefaultConfig(), src).Generate(text, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "____ beta gamma delta epsilon zeta eta.", items[0].Question)
	assert.Equal(t, "Alpha", items[0].Answer)
	assert.Equal(t, "Alpha beta gamma delta epsilon zeta ____", items[1].Question)
	assert.Equal(t, "eta.", items[1].Answer)
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a, err := NewGenerator(DefaultConfig(), random.New(8)).Generate(longText, 5)
	require.NoError(t, err)
	b, err := NewGenerator(DefaultConfig(), random.New(8)).Generate(longText, 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateEmpty(t *testing.T) {
	items, err := NewGenerator(DefaultConfig(), random.New(1)).Generate("", 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGenerateCustomPlaceholder(t *testing.T) {
	cfg := Config{Placeholder: "[?]", ShortSentenceTokens: 2}
	src := &scriptedSource{ints: []int{0, 1}}
	items, err := NewGenerator(cfg, src).Generate("Go has channels.", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Go [?] channels.", items[0].Question)
	assert.Equal(t, "has", items[0].Answer)
}

func TestGenerateHonoursZeroShortSentenceTokens(t *testing.T) {
	cfg := Config{Placeholder: "____", ShortSentenceTokens: 0}
	src := &scriptedSource{ints: []int{0, 2}}
	items, err := NewGenerator(cfg, src).Generate("Go has channels.", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Go has ____", items[0].Question)
	assert.Equal(t, "channels.", items[0].Answer)
}

func TestCheckAnswer(t *testing.T) {
	item := domain.QuizItem{Question: "The ____ is red.", Answer: "apple,"}
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"exact", "apple,", true},
		{"without punctuation", "apple", true},
		{"different case", "  APPLE ", true},
		{"wrong", "pear", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAnswer(item, tt.response))
		})
	}

	symbolOnly := domain.QuizItem{Answer: "&"}
	assert.True(t, CheckAnswer(symbolOnly, "&"))
	assert.False(t, CheckAnswer(symbolOnly, "and"))
}
