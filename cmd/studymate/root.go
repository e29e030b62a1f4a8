package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"studymate/internal/config"
	"studymate/internal/domain"
	"studymate/internal/extractor"
	"studymate/internal/logging"
	"studymate/internal/mindmap"
	"studymate/internal/quiz"
	"studymate/internal/random"
	"studymate/internal/service"
	"studymate/internal/summarizer"
	"studymate/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "studymate [file]",
	Short: "Summaries, mindmaps and quizzes from your study documents",
	Long: `StudyMate reads a PDF or text document and builds a bullet summary,
a keyword mindmap and fill-in-the-blank quiz questions.

Without a file argument an interactive file picker opens.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (uses ./config.yaml or ~/.config/studymate/config.yaml if not provided)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for mindmap edges and quiz sampling (0 picks one from the clock)")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(mindmapCmd)
	rootCmd.AddCommand(quizCmd)
}

// loadConfig resolves the config from --config, then the default locations,
// and applies environment and --seed overrides.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	var cfg *config.AppConfig
	var err error
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		cfg, err = config.Load(p)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.ApplyEnv(cfg)
	if cmd.Flags().Changed("seed") {
		cfg.Random.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	return cfg, nil
}

// buildService assembles the pipeline components described by cfg.
func buildService(cfg *config.AppConfig, log logrus.FieldLogger) (*service.StudyServiceImpl, *extractor.Registry, error) {
	registry, err := extractor.ForExtensions(cfg.Extractor.Extensions)
	if err != nil {
		return nil, nil, err
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer()
	default:
		return nil, nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	rnd := random.New(cfg.Random.Seed)
	mm := mindmap.NewBuilder(mindmap.Config{
		MaxNodes:        cfg.Mindmap.MaxNodes,
		EdgeProbability: cfg.Mindmap.EdgeProbability,
		LayoutUpdates:   cfg.Mindmap.LayoutUpdates,
	}, rnd)
	qg := quiz.NewGenerator(quiz.Config{
		Placeholder:         cfg.Quiz.Placeholder,
		ShortSentenceTokens: cfg.Quiz.ShortSentenceTokens,
	}, rnd)

	svc := service.NewStudyService(registry, sum, mm, qg, service.Options{
		SummarySentences: cfg.Summarizer.MaxSentences,
		QuizQuestions:    cfg.Quiz.Questions,
	}, log)
	return svc, registry, nil
}

// setup opens the logger and builds the service. Logs go to fallback unless
// a log file is configured.
func setup(cfg *config.AppConfig, fallback io.Writer) (*service.StudyServiceImpl, *extractor.Registry, func() error, error) {
	logger, closeLog, err := logging.New(cfg.Log, fallback)
	if err != nil {
		return nil, nil, nil, err
	}
	svc, registry, err := buildService(cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}
	return svc, registry, closeLog, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so unconfigured logs are dropped.
	svc, registry, closeLog, err := setup(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	path := ""
	if len(args) == 1 {
		path = args[0]
		if _, err := os.Stat(path); err != nil {
			return err
		}
	}
	m := tui.New(svc, path, registry.Extensions())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
