package mindmap

import (
	"math"

	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"studymate/internal/domain"
	"studymate/internal/random"
)

// Config tunes the mindmap builder.
type Config struct {
	MaxNodes        int
	EdgeProbability float64
	LayoutUpdates   int
}

// DefaultConfig returns ten nodes, coin-flip edges and a short spring layout.
func DefaultConfig() Config {
	return Config{MaxNodes: 10, EdgeProbability: 0.5, LayoutUpdates: 50}
}

// Builder produces a keyword graph with randomly connected nodes.
type Builder struct {
	cfg Config
	rnd random.Source
}

// NewBuilder creates a builder drawing edges from rnd.
func NewBuilder(cfg Config, rnd random.Source) *Builder {
	if cfg.MaxNodes <= 0 {
		cfg.MaxNodes = 10
	}
	if cfg.LayoutUpdates <= 0 {
		cfg.LayoutUpdates = 50
	}
	return &Builder{cfg: cfg, rnd: rnd}
}

// Build selects the most frequent keywords of text, connects each pair with
// the configured probability and lays the graph out on the unit square.
func (b *Builder) Build(text string) (domain.TermGraph, error) {
	terms := Keywords(text, b.cfg.MaxNodes)
	if len(terms) == 0 {
		return domain.TermGraph{}, nil
	}
	g := simple.NewUndirectedGraph()
	for i := range terms {
		g.AddNode(simple.Node(i))
	}
	var edges []domain.GraphEdge
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			if b.rnd.Float64() < b.cfg.EdgeProbability {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
				edges = append(edges, domain.GraphEdge{From: terms[i].Word, To: terms[j].Word})
			}
		}
	}
	xs, ys := b.layout(g, len(terms))
	nodes := make([]domain.GraphNode, len(terms))
	for i, t := range terms {
		nodes[i] = domain.GraphNode{Word: t.Word, Count: t.Count, X: xs[i], Y: ys[i]}
	}
	return domain.TermGraph{Nodes: nodes, Edges: edges}, nil
}

// layout runs the Eades spring embedder and rescales the result into [0,1]².
func (b *Builder) layout(g *simple.UndirectedGraph, n int) ([]float64, []float64) {
	xs := make([]float64, n)
	ys := make([]float64, n)
	if n == 1 {
		xs[0], ys[0] = 0.5, 0.5
		return xs, ys
	}
	eades := layout.EadesR2{Updates: b.cfg.LayoutUpdates, Repulsion: 1, Rate: 0.05, Theta: 0.2}
	o := layout.NewOptimizerR2(g, eades.Update)
	for o.Update() {
	}
	for i := 0; i < n; i++ {
		p := o.Coord2(int64(i))
		xs[i], ys[i] = p.X, p.Y
	}
	normalize(xs)
	normalize(ys)
	return xs, ys
}

func normalize(vs []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	for i, v := range vs {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0) || !(span > 1e-12):
			vs[i] = 0.5
		default:
			vs[i] = (v - lo) / span
		}
	}
}
