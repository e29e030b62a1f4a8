package mindmap

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/domain"
	"studymate/internal/random"
)

const lecture = `Photosynthesis converts light energy into chemical energy. Plants capture
light with chlorophyll, and chlorophyll sits inside chloroplasts. The energy is stored
as glucose. Glucose feeds the plant, and the plant releases oxygen. Oxygen and glucose
are products; carbon dioxide and water are inputs. Light drives the reaction, water
supplies electrons, carbon becomes sugar, and sugar becomes starch for storage.`

var nodePattern = regexp.MustCompile(`^[a-z]{4,}$`)

// fixedSource replays a constant for every draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }
func (f fixedSource) IntN(n int) int   { return 0 }

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []domain.Term
	}{
		{"empty", "", 10, []domain.Term{}},
		{"short words ignored", "a an the cat dog 1234 abc", 10, []domain.Term{}},
		{"case folded and counted", "Tree tree TREE leaf Leaf root", 10,
			[]domain.Term{{Word: "tree", Count: 3}, {Word: "leaf", Count: 2}, {Word: "root", Count: 1}}},
		{"ties by first occurrence", "zeta alpha beta alpha zeta gamma", 10,
			[]domain.Term{{Word: "zeta", Count: 2}, {Word: "alpha", Count: 2}, {Word: "beta", Count: 1}, {Word: "gamma", Count: 1}}},
		{"limit applied", "one1 word word words words words", 1,
			[]domain.Term{{Word: "words", Count: 3}}},
		{"zero limit", "plenty of words here", 0, nil},
		{"accented words are not split", "Zürich Zürich", 10, []domain.Term{}},
		{"umlaut inside word", "Schrödinger Schrödinger", 10, []domain.Term{}},
		{"eszett inside word", "Straßenbahn", 10, []domain.Term{}},
		{"ascii words beside accented ones", "Café Paris café Paris naïve", 10,
			[]domain.Term{{Word: "paris", Count: 2}}},
		{"digits and underscores join words", "plate2 snake_case plate", 10,
			[]domain.Term{{Word: "plate", Count: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.text, tt.limit)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildNodeBound(t *testing.T) {
	texts := []string{"", "tiny", lecture, strings.Repeat(lecture, 3)}
	for _, text := range texts {
		b := NewBuilder(DefaultConfig(), random.New(7))
		g, err := b.Build(text)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(g.Nodes), 10)
		for _, n := range g.Nodes {
			assert.Regexp(t, nodePattern, n.Word)
		}
	}
}

func TestBuildGraphIsSimple(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b := NewBuilder(DefaultConfig(), random.New(seed))
		g, err := b.Build(lecture)
		require.NoError(t, err)

		rank := map[string]int{}
		for i, n := range g.Nodes {
			rank[n.Word] = i
		}
		seen := map[[2]string]bool{}
		for _, e := range g.Edges {
			assert.NotEqual(t, e.From, e.To)
			assert.Less(t, rank[e.From], rank[e.To])
			key := [2]string{e.From, e.To}
			assert.False(t, seen[key], "duplicate edge %v", key)
			seen[key] = true
		}
		assert.LessOrEqual(t, len(g.Edges), len(g.Nodes)*(len(g.Nodes)-1)/2)
	}
}

func TestBuildEdgeProbabilityExtremes(t *testing.T) {
	cfg := DefaultConfig()

	cfg.EdgeProbability = 0
	g, err := NewBuilder(cfg, random.New(3)).Build(lecture)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 10)
	assert.Empty(t, g.Edges)

	cfg.EdgeProbability = 1
	g, err = NewBuilder(cfg, random.New(3)).Build(lecture)
	require.NoError(t, err)
	assert.Len(t, g.Edges, 45)
}

func TestBuildCoinFlipThreshold(t *testing.T) {
	g, err := NewBuilder(DefaultConfig(), fixedSource(0.49)).Build(lecture)
	require.NoError(t, err)
	assert.Len(t, g.Edges, 45)

	g, err = NewBuilder(DefaultConfig(), fixedSource(0.5)).Build(lecture)
	require.NoError(t, err)
	assert.Empty(t, g.Edges)
}

func TestBuildSeededEdgesAreReproducible(t *testing.T) {
	a, err := NewBuilder(DefaultConfig(), random.New(99)).Build(lecture)
	require.NoError(t, err)
	b, err := NewBuilder(DefaultConfig(), random.New(99)).Build(lecture)
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)
	for i := range a.Nodes {
		assert.Equal(t, a.Nodes[i].Word, b.Nodes[i].Word)
	}
}

func TestBuildLayoutOnUnitSquare(t *testing.T) {
	g, err := NewBuilder(DefaultConfig(), random.New(5)).Build(lecture)
	require.NoError(t, err)
	require.NotEmpty(t, g.Nodes)
	for _, n := range g.Nodes {
		assert.GreaterOrEqual(t, n.X, 0.0)
		assert.LessOrEqual(t, n.X, 1.0)
		assert.GreaterOrEqual(t, n.Y, 0.0)
		assert.LessOrEqual(t, n.Y, 1.0)
	}
}

func TestBuildSparseText(t *testing.T) {
	g, err := NewBuilder(DefaultConfig(), random.New(1)).Build("")
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)

	g, err = NewBuilder(DefaultConfig(), fixedSource(0)).Build("solitary")
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
	assert.Equal(t, 0.5, g.Nodes[0].X)
	assert.Equal(t, 0.5, g.Nodes[0].Y)
}

func TestNormalize(t *testing.T) {
	vs := []float64{-2, 0, 2}
	normalize(vs)
	assert.Equal(t, []float64{0, 0.5, 1}, vs)

	flat := []float64{3, 3}
	normalize(flat)
	assert.Equal(t, []float64{0.5, 0.5}, flat)
}
