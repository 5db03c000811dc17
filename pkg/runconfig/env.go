package runconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvConfig is the process-side binding to one oracle instance: which
// problem to select, where to reach the oracle, and the team credential it
// expects on every request.
type EnvConfig struct {
	Problem string
	BaseURL string
	TeamID  string
}

// LoadEnv loads an optional .env file (ignored if absent, matching the
// pack's own godotenv usage) and reads the three required environment
// variables, trimming surrounding whitespace.
func LoadEnv() (*EnvConfig, error) {
	_ = godotenv.Load()

	cfg := &EnvConfig{
		Problem: strings.TrimSpace(os.Getenv("LIBRARYRECON_PROBLEM")),
		BaseURL: strings.TrimSpace(os.Getenv("LIBRARYRECON_ORACLE_URL")),
		TeamID:  strings.TrimSpace(os.Getenv("LIBRARYRECON_TEAM_ID")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required environment variable was set.
func (c *EnvConfig) Validate() error {
	if c.Problem == "" {
		return fmt.Errorf("runconfig: LIBRARYRECON_PROBLEM is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("runconfig: LIBRARYRECON_ORACLE_URL is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("runconfig: LIBRARYRECON_TEAM_ID is required")
	}
	return nil
}
