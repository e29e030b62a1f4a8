package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studymate/internal/domain"
)

var summaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Print the highest ranked sentences of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var mindmapCmd = &cobra.Command{
	Use:   "mindmap FILE",
	Short: "Print the keyword graph of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runMindmap,
}

var quizCmd = &cobra.Command{
	Use:   "quiz FILE",
	Short: "Print fill-in-the-blank questions followed by their answers",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuiz,
}

func init() {
	summaryCmd.Flags().Int("sentences", 0, "Number of summary sentences (default from config)")
	quizCmd.Flags().Int("questions", 0, "Number of quiz draws (default from config)")
}

// processForPrint runs the pipeline with logs on stderr.
func processForPrint(cmd *cobra.Command, path string) (*domain.StudyPack, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("sentences") {
		cfg.Summarizer.MaxSentences, _ = cmd.Flags().GetInt("sentences")
	}
	if cmd.Flags().Changed("questions") {
		cfg.Quiz.Questions, _ = cmd.Flags().GetInt("questions")
	}
	svc, _, closeLog, err := setup(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	defer closeLog()
	return svc.ProcessFile(path)
}

func runSummary(cmd *cobra.Command, args []string) error {
	pack, err := processForPrint(cmd, args[0])
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), pack.Summary)
	return nil
}

func runMindmap(cmd *cobra.Command, args []string) error {
	pack, err := processForPrint(cmd, args[0])
	if err != nil {
		return err
	}
	printMindmap(cmd.OutOrStdout(), pack.Mindmap)
	return nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	pack, err := processForPrint(cmd, args[0])
	if err != nil {
		return err
	}
	printQuiz(cmd.OutOrStdout(), pack.Quiz)
	return nil
}

func printSummary(w io.Writer, summary []string) {
	if len(summary) == 0 {
		fmt.Fprintln(w, "(no sentences)")
		return
	}
	for _, s := range summary {
		fmt.Fprintf(w, "- %s\n", s)
	}
}

func printMindmap(w io.Writer, g domain.TermGraph) {
	if len(g.Nodes) == 0 {
		fmt.Fprintln(w, "(no keywords)")
		return
	}
	fmt.Fprintln(w, "Nodes:")
	for _, n := range g.Nodes {
		fmt.Fprintf(w, "  %-16s count=%-4d x=%.3f y=%.3f\n", n.Word, n.Count, n.X, n.Y)
	}
	fmt.Fprintln(w, "Edges:")
	for _, e := range g.Edges {
		fmt.Fprintf(w, "  %s -- %s\n", e.From, e.To)
	}
}

func printQuiz(w io.Writer, items []domain.QuizItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(no questions)")
		return
	}
	for i, it := range items {
		fmt.Fprintf(w, "Q%d. %s\n", i+1, it.Question)
	}
	fmt.Fprintln(w, "\nAnswers:")
	for i, it := range items {
		fmt.Fprintf(w, "  Q%d. %s\n", i+1, it.Answer)
	}
}
