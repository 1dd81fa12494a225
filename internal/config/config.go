package config

import (
	"time"

	"github.com/heartmarshall/recall/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	Study    StudyConfig    `yaml:"study"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SRSConfig holds spaced-repetition system parameters.
type SRSConfig struct {
	LearningStepsRaw     string  `yaml:"learning_steps"         env:"SRS_LEARNING_STEPS"         env-default:"1m,10m"`
	DefaultEaseFactor    float64 `yaml:"default_ease_factor"    env:"SRS_DEFAULT_EASE"           env-default:"2.5"`
	MinEaseFactor        float64 `yaml:"min_ease_factor"        env:"SRS_MIN_EASE"               env-default:"1.3"`
	EaseStep             float64 `yaml:"ease_step"              env:"SRS_EASE_STEP"              env-default:"0.15"`
	HardIntervalModifier float64 `yaml:"hard_interval_modifier" env:"SRS_HARD_INTERVAL_MODIFIER" env-default:"0.85"`
	EasyBonus            float64 `yaml:"easy_bonus"             env:"SRS_EASY_BONUS"             env-default:"1.3"`
	GraduatingInterval   int     `yaml:"graduating_interval"    env:"SRS_GRADUATING_INTERVAL"    env-default:"1"`
	EasyInterval         int     `yaml:"easy_interval"          env:"SRS_EASY_INTERVAL"          env-default:"4"`

	// LearningSteps is parsed from LearningStepsRaw during validation.
	LearningSteps []time.Duration `yaml:"-" env:"-"`
}

// StudyConfig holds settings for interactive study sessions.
type StudyConfig struct {
	DefaultDeck      string        `yaml:"default_deck"      env:"STUDY_DEFAULT_DECK"      env-default:"default"`
	LenientThreshold int           `yaml:"lenient_threshold" env:"STUDY_LENIENT_THRESHOLD" env-default:"2"`
	Timezone         string        `yaml:"timezone"          env:"STUDY_TIMEZONE"          env-default:"Local"`
	EasyBefore       time.Duration `yaml:"easy_before"       env:"STUDY_EASY_BEFORE"       env-default:"3s"`
	HardAfter        time.Duration `yaml:"hard_after"        env:"STUDY_HARD_AFTER"        env-default:"8s"`
}

// ToDomain converts the validated section into scheduling parameters.
func (s SRSConfig) ToDomain() domain.SRSConfig {
	return domain.SRSConfig{
		LearningSteps:        s.LearningSteps,
		DefaultEaseFactor:    s.DefaultEaseFactor,
		MinEaseFactor:        s.MinEaseFactor,
		EaseStep:             s.EaseStep,
		HardIntervalModifier: s.HardIntervalModifier,
		EasyBonus:            s.EasyBonus,
		GraduatingInterval:   s.GraduatingInterval,
		EasyInterval:         s.EasyInterval,
	}
}
