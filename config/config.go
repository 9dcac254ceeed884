package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings. A missing GEMINI_API_KEY is a
// normal condition: the interaction service degrades to its fallback pools.
type Config struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel      string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GeminiBaseURL    string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	GeminiTimeout    time.Duration `envconfig:"GEMINI_TIMEOUT" default:"10s"`
	MatchProbability float64       `envconfig:"MATCH_PROBABILITY" default:"0.5"`
	ReplyDelayMin    time.Duration `envconfig:"REPLY_DELAY_MIN" default:"1500ms"`
	ReplyDelayMax    time.Duration `envconfig:"REPLY_DELAY_MAX" default:"2500ms"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	if cfg.MatchProbability < 0 || cfg.MatchProbability > 1 {
		return nil, fmt.Errorf("MATCH_PROBABILITY must be between 0 and 1, got %v", cfg.MatchProbability)
	}
	if cfg.ReplyDelayMax < cfg.ReplyDelayMin {
		return nil, fmt.Errorf("REPLY_DELAY_MAX must not be below REPLY_DELAY_MIN")
	}
	return &cfg, nil
}
