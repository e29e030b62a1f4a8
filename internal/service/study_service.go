package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"studymate/internal/domain"
)

// Options holds the per-run sizes requested from each component.
type Options struct {
	SummarySentences int
	QuizQuestions    int
}

// ExtractorSource runs the extractor matching an uploaded file.
type ExtractorSource interface {
	ExtractFile(path string) (string, error)
}

// StudyServiceImpl runs the extract, summarize, mindmap and quiz steps for one document.
type StudyServiceImpl struct {
	extractors ExtractorSource
	summarizer domain.Summarizer
	mindmap    domain.MindmapBuilder
	quiz       domain.QuizGenerator
	opts       Options
	log        logrus.FieldLogger
}

var _ domain.StudyService = (*StudyServiceImpl)(nil)

func NewStudyService(extractors ExtractorSource, summarizer domain.Summarizer, mindmap domain.MindmapBuilder, quiz domain.QuizGenerator, opts Options, log logrus.FieldLogger) *StudyServiceImpl {
	return &StudyServiceImpl{extractors: extractors, summarizer: summarizer, mindmap: mindmap, quiz: quiz, opts: opts, log: log}
}

// ProcessFile extracts the text of the file at path and builds its study pack.
func (s *StudyServiceImpl) ProcessFile(path string) (*domain.StudyPack, error) {
	runID := uuid.NewString()
	log := s.log.WithFields(logrus.Fields{"run_id": runID, "path": path})
	text, err := s.extractors.ExtractFile(path)
	if err != nil {
		log.WithError(err).Error("extraction failed")
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	doc := domain.Document{ID: hashString(path), Path: path, Content: text}
	return s.build(runID, doc, log.WithField("doc_id", doc.ID))
}

func (s *StudyServiceImpl) build(runID string, doc domain.Document, log logrus.FieldLogger) (*domain.StudyPack, error) {
	log.WithField("chars", len(doc.Content)).Info("text extracted")
	summary, err := s.summarizer.Summarize(doc.Content, s.opts.SummarySentences)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	log.WithField("sentences", len(summary)).Debug("summary ready")

	graph, err := s.mindmap.Build(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("mindmap: %w", err)
	}
	log.WithFields(logrus.Fields{"nodes": len(graph.Nodes), "edges": len(graph.Edges)}).Debug("mindmap ready")

	items, err := s.quiz.Generate(doc.Content, s.opts.QuizQuestions)
	if err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	if len(items) < s.opts.QuizQuestions {
		log.WithFields(logrus.Fields{"items": len(items), "requested": s.opts.QuizQuestions}).Debug("quiz under-filled")
	}
	log.WithField("items", len(items)).Info("study pack ready")

	return &domain.StudyPack{
		ID:       runID,
		Document: doc,
		Summary:  summary,
		Mindmap:  graph,
		Quiz:     items,
	}, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
