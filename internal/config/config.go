package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ExtractorConfig lists the file extensions accepted for upload.
type ExtractorConfig struct {
	Extensions []string `yaml:"extensions"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
}

// MindmapConfig configures the keyword graph.
type MindmapConfig struct {
	MaxNodes        int     `yaml:"max_nodes"`
	EdgeProbability float64 `yaml:"edge_probability"`
	LayoutUpdates   int     `yaml:"layout_updates"`
}

// QuizConfig configures fill-in-the-blank generation.
type QuizConfig struct {
	Questions int `yaml:"questions"`
	// ShortSentenceTokens is the largest whitespace token count of a sentence
	// that still yields no question.
	ShortSentenceTokens int    `yaml:"short_sentence_tokens"`
	Placeholder         string `yaml:"placeholder"`
}

// RandomConfig fixes the random seed. Zero seeds from the clock.
type RandomConfig struct {
	Seed uint64 `yaml:"seed"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Mindmap    MindmapConfig    `yaml:"mindmap"`
	Quiz       QuizConfig       `yaml:"quiz"`
	Random     RandomConfig     `yaml:"random"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Keys missing from the file keep their default; keys present keep their value, zero included.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/studymate/config.yaml.
// If neither exists, it writes defaults to ~/.config/studymate/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides fields from the environment (after .env is loaded).
func ApplyEnv(cfg *AppConfig) {
	if lvl := os.Getenv("STUDYMATE_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if f := os.Getenv("STUDYMATE_LOG_FILE"); f != "" {
		cfg.Log.File = f
	}
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "studymate", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Extractor:  ExtractorConfig{Extensions: []string{".pdf", ".txt"}},
		Summarizer: SummarizerConfig{Type: "frequency", MaxSentences: 5},
		Mindmap:    MindmapConfig{MaxNodes: 10, EdgeProbability: 0.5, LayoutUpdates: 50},
		Quiz:       QuizConfig{Questions: 5, ShortSentenceTokens: 5, Placeholder: "____"},
		Log:        LogConfig{Level: "info"},
	}
	return cfg
}

// applyConfigDefaults refills settings that have no usable empty value.
func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if len(cfg.Extractor.Extensions) == 0 {
		cfg.Extractor.Extensions = def.Extractor.Extensions
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = def.Summarizer.Type
	}
	if cfg.Quiz.Placeholder == "" {
		cfg.Quiz.Placeholder = def.Quiz.Placeholder
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
