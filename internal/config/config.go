package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ASTConfig configures the structural relevance measure.
type ASTConfig struct {
	Normalized bool `yaml:"normalized"`
}

// MeasureConfig selects and configures the relevance measure.
type MeasureConfig struct {
	Type          string     `yaml:"type"`
	VectorSpace   string     `yaml:"vector_space"`
	TermWeighting string     `yaml:"term_weighting"`
	AST           *ASTConfig `yaml:"ast,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Measure MeasureConfig `yaml:"measure"`
	TopK    int           `yaml:"top_k"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/keyrel/config.yaml.
// If neither exists, it writes defaults to ~/.config/keyrel/config.yaml and returns them.
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

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "keyrel", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Measure: MeasureConfig{
			Type:          "cosine",
			VectorSpace:   "stems",
			TermWeighting: "tf_idf",
		},
		TopK: 10,
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Measure.Type == "" {
		cfg.Measure.Type = "cosine"
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 10
	}
	if cfg.Measure.Type == "ast" && cfg.Measure.AST == nil {
		cfg.Measure.AST = &ASTConfig{Normalized: true}
	}
}
