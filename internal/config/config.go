package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds the runtime configuration of the API service.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"qcm-math"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Quiz     Quiz
	Postgres Postgres
	Redis    Redis
	CORS     CORS
}

// Quiz groups generation and scoring settings.
type Quiz struct {
	// SubjectsFile overrides the subject intervals with a YAML file.
	SubjectsFile  string        `env:"QUIZ_SUBJECTS_FILE"`
	RecentTTL     time.Duration `env:"QUIZ_RECENT_TTL" envDefault:"30m"`
	DedupAttempts int           `env:"QUIZ_DEDUP_ATTEMPTS" envDefault:"5"`
	ScoreScale    float64       `env:"QUIZ_SCORE_SCALE" envDefault:"100"`
	ScoreOffset   float64       `env:"QUIZ_SCORE_OFFSET" envDefault:"2"`
}

// Postgres captures connection info for the score history. An empty host
// disables it.
type Postgres struct {
	Host     string `env:"PG_HOST"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DATABASE"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

func (p Postgres) Enabled() bool { return p.Host != "" }

// DSN returns the keyword/value connection string understood by pgx.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode, p.MaxConns)
}

// Redis backs the per-session recent-question memory. An empty address
// falls back to process memory.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

func (r Redis) Enabled() bool { return r.Addr != "" }

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Quiz.ScoreScale <= 0 {
		return nil, fmt.Errorf("parse config: QUIZ_SCORE_SCALE must be positive, got %v", cfg.Quiz.ScoreScale)
	}
	if cfg.Quiz.DedupAttempts < 1 {
		return nil, fmt.Errorf("parse config: QUIZ_DEDUP_ATTEMPTS must be at least 1, got %d", cfg.Quiz.DedupAttempts)
	}
	return cfg, nil
}
