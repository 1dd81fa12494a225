package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/recall/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	steps, err := ParseLearningSteps(s.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	if len(steps) == 0 {
		return fmt.Errorf("learning_steps: at least one step is required: %w", domain.ErrInvalidConfig)
	}
	s.LearningSteps = steps

	return s.ToDomain().Validate()
}

func (s *StudyConfig) validate() error {
	if strings.TrimSpace(s.DefaultDeck) == "" {
		return fmt.Errorf("default_deck must not be empty")
	}
	if s.LenientThreshold < 0 {
		return fmt.Errorf("lenient_threshold must be >= 0 (got %d)", s.LenientThreshold)
	}
	if s.EasyBefore <= 0 || s.HardAfter <= s.EasyBefore {
		return fmt.Errorf("need 0 < easy_before < hard_after (got %v, %v)", s.EasyBefore, s.HardAfter)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	return nil
}

// ParseLearningSteps parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseLearningSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("step %q must be positive", p)
		}
		steps = append(steps, d)
	}

	return steps, nil
}
