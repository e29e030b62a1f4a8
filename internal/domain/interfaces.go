package domain

import "io"

// Document represents a single uploaded file and its extracted text.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Term is a word together with its number of occurrences in a document.
type Term struct {
	Word  string
	Count int
}

// GraphNode is a mindmap keyword placed on the unit square.
type GraphNode struct {
	Word  string
	Count int
	X     float64
	Y     float64
}

// GraphEdge connects two keywords. From is always ranked before To.
type GraphEdge struct {
	From string
	To   string
}

// TermGraph is the undirected keyword graph shown as a mindmap.
type TermGraph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// QuizItem is a fill-in-the-blank question built from one sentence.
type QuizItem struct {
	Question string
	Answer   string
	Sentence string
}

// StudyPack holds everything produced for one uploaded document.
type StudyPack struct {
	ID       string
	Document Document
	Summary  []string
	Mindmap  TermGraph
	Quiz     []QuizItem
}

// Extractor turns an uploaded document into plain text.
type Extractor interface {
	Extract(r io.ReaderAt, size int64) (string, error)
}

// Summarizer selects the most representative sentences of a text.
type Summarizer interface {
	Summarize(text string, maxSentences int) ([]string, error)
}

// MindmapBuilder builds a keyword graph of a text.
type MindmapBuilder interface {
	Build(text string) (TermGraph, error)
}

// QuizGenerator creates fill-in-the-blank questions from a text.
type QuizGenerator interface {
	Generate(text string, count int) ([]QuizItem, error)
}

// StudyService defines the operations exposed by the application core.
type StudyService interface {
	ProcessFile(path string) (*StudyPack, error)
}
