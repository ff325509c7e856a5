package bridge

import (
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config carries the environment-tunable bridge settings. It exists for
// hosts that prefer deployment-time configuration over code; everything
// here is also reachable through Options directly.
type Config struct {
	// StrictLookup selects the clear UnsupportedOperationError for unknown
	// operations. Disabling it restores the raw panic behavior.
	StrictLookup bool `env:"HOSTBRIDGE_STRICT_LOOKUP,default=true"`

	// EventBuffer enables the invocation event stream when positive.
	EventBuffer int `env:"HOSTBRIDGE_EVENT_BUFFER,default=0"`

	// LogLevel is a zerolog level name for the diagnostic logger.
	LogLevel string `env:"HOSTBRIDGE_LOG_LEVEL,default=info"`
}

// LoadConfig reads Config from the environment, loading the given .env
// files first (or ./.env when none are given). Missing .env files are not
// an error; local runs simply may not have one.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	var c Config
	if err := envdecode.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode bridge config: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return Config{}, fmt.Errorf("decode bridge config: %w", err)
	}
	return c, nil
}

// Logger builds the diagnostic logger described by the config, writing to
// stderr at the configured level.
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}

// Options renders the config as bridge Options for New.
func (c Config) Options() []Option {
	opts := []Option{WithLogger(c.Logger())}
	if !c.StrictLookup {
		opts = append(opts, WithRawLookupFailure())
	}
	if c.EventBuffer > 0 {
		opts = append(opts, WithEventBuffer(c.EventBuffer))
	}
	return opts
}
