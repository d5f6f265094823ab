package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/standardbeagle/fpr/internal/types"
)

// DefaultConfigFile is the config file name looked up in the project root.
const DefaultConfigFile = ".fpr.kdl"

type Config struct {
	Version  int
	Project  Project
	Resolver Resolver
	Corpus   Corpus
}

type Project struct {
	Root string
	Name string
}

// Resolver controls the resolution policy. The thresholds default to the
// engine constants; overriding them changes observable behavior for every
// caller, so treat edits as a deliberate, tested decision.
type Resolver struct {
	AutoMatchThreshold  float64
	SuggestionThreshold float64
	Workers             int // concurrent exact lookups per batch, 0 = NumCPU
}

// Corpus controls how the identifier corpus is built from the file system.
type Corpus struct {
	Include         []string // doublestar globs; empty = every file
	Exclude         []string
	WatchMode       bool // keep the corpus in sync via fsnotify
	WatchDebounceMs int
}

// Default returns the baseline configuration.
func Default() *Config {
	root, _ := os.Getwd()
	if root == "" {
		root = "."
	}
	return &Config{
		Version: 1,
		Project: Project{Root: root},
		Resolver: Resolver{
			AutoMatchThreshold:  types.DefaultAutoMatchThreshold,
			SuggestionThreshold: types.DefaultSuggestionThreshold,
			Workers:             runtime.NumCPU(),
		},
		Corpus: Corpus{
			Exclude: []string{
				"**/.git/**",
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/vendor/**",
			},
			WatchDebounceMs: 100,
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Relative project roots resolve against the config file's
// directory.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := parseKDL(cfg, string(content)); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(cfg.Project.Root) {
		base := filepath.Dir(path)
		cfg.Project.Root = filepath.Clean(filepath.Join(base, cfg.Project.Root))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Thresholds converts the configured cutoffs into the engine's value type.
func (c *Config) Thresholds() types.Thresholds {
	return types.Thresholds{
		AutoMatch:  c.Resolver.AutoMatchThreshold,
		Suggestion: c.Resolver.SuggestionThreshold,
	}
}

// Validate checks configured values for internal consistency.
func (c *Config) Validate() error {
	if err := c.Thresholds().Validate(); err != nil {
		return err
	}
	if c.Resolver.Workers < 0 {
		return fmt.Errorf("resolver workers must be non-negative, got %d", c.Resolver.Workers)
	}
	if c.Corpus.WatchDebounceMs < 0 {
		return fmt.Errorf("watch debounce must be non-negative, got %d", c.Corpus.WatchDebounceMs)
	}
	return nil
}
