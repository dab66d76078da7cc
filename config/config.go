package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"shortform-preprod/types"
)

type Config struct {
	Script     ScriptConfig     `yaml:"script"`
	Validation ValidationConfig `yaml:"validation"`
	Server     ServerConfig     `yaml:"server"`
	Paths      PathsConfig      `yaml:"paths"`
}

type ScriptConfig struct {
	HookDurationSeconds         int `yaml:"hook_duration_seconds"`
	DevelopmentThresholdSeconds int `yaml:"development_threshold_seconds"`
	MinResolutionSeconds        int `yaml:"min_resolution_seconds"`
}

type ValidationConfig struct {
	ScriptDurationTolerance     float64 `yaml:"script_duration_tolerance"`
	StoryboardDurationTolerance float64 `yaml:"storyboard_duration_tolerance"`
	MaxDialogueWords            int     `yaml:"max_dialogue_words"`
	MinAdvisoryItems            int     `yaml:"min_advisory_items"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
}

// Default returns the built-in configuration used when no config file exists
func Default() *Config {
	return &Config{
		Script: ScriptConfig{
			HookDurationSeconds:         5,
			DevelopmentThresholdSeconds: 45,
			MinResolutionSeconds:        5,
		},
		Validation: ValidationConfig{
			ScriptDurationTolerance:     0.30,
			StoryboardDurationTolerance: types.StoryboardDurationTolerance,
			MaxDialogueWords:            50,
			MinAdvisoryItems:            types.MinAdvisoryItems,
		},
		Server: ServerConfig{Addr: ":8080"},
		Paths:  PathsConfig{Output: "output"},
	}
}

// Load reads a yaml config file and overlays it on the defaults.
// A missing file is not an error; defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets .env / environment override deploy-specific fields
func applyEnv(cfg *Config) {
	if addr := os.Getenv("PREPROD_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if out := os.Getenv("PREPROD_OUTPUT_DIR"); out != "" {
		cfg.Paths.Output = out
	}
}
