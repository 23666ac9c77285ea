// Package config loads localekit settings from built-in defaults, an
// optional YAML file, an optional .env file and the environment, in
// increasing order of precedence. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localekit/pkg/keysync"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/translate"
)

// DefaultFile is read when no config path is given and the file exists.
const DefaultFile = "localekit.yaml"

// Translation backends.
const (
	BackendREST  = "rest"
	BackendCloud = "cloud"
	BackendNoop  = "noop"
)

type Config struct {
	Dir      string `yaml:"dir"      env:"LOCALEKIT_DIR"`
	Baseline string `yaml:"baseline" env:"LOCALEKIT_BASELINE"`
	ESMDir   string `yaml:"esm_dir"  env:"LOCALEKIT_ESM_DIR"`
	CJSDir   string `yaml:"cjs_dir"  env:"LOCALEKIT_CJS_DIR"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`

	Translate TranslateConfig     `yaml:"translate"`
	Sync      SyncConfig          `yaml:"sync"`
	Log       LogConfig           `yaml:"log"`
	Sentry    logger.SentryConfig `yaml:"sentry"`
}

type TranslateConfig struct {
	APIKey      string        `yaml:"api_key"     env:"TRANSLATE_API_KEY"`
	Backend     string        `yaml:"backend"     env:"TRANSLATE_BACKEND"`
	Endpoint    string        `yaml:"endpoint"    env:"TRANSLATE_ENDPOINT"`
	Timeout     time.Duration `yaml:"timeout"     env:"TRANSLATE_TIMEOUT"`
	Concurrency int           `yaml:"concurrency" env:"TRANSLATE_CONCURRENCY"`
}

type SyncConfig struct {
	Mismatch string `yaml:"mismatch" env:"SYNC_MISMATCH_POLICY"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Dir:      ".",
		Baseline: locale.DefaultBaseline,
		ESMDir:   "js",
		CJSDir:   "cjs",
		Translate: TranslateConfig{
			Backend:     BackendREST,
			Endpoint:    translate.DefaultEndpoint,
			Timeout:     translate.DefaultTimeout,
			Concurrency: keysync.DefaultConcurrency,
		},
		Sync: SyncConfig{Mismatch: keysync.MismatchSkip.String()},
		Log:  LogConfig{Level: "info", Format: string(logger.FormatText)},
	}
}

// Load builds the configuration. An empty path reads DefaultFile if it
// exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Join(ErrLoadDotenv, err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Join(ErrParseFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

// Validate checks values that are shared by every command.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("%w: dir is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.Baseline) == "" {
		return fmt.Errorf("%w: baseline is empty", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Join(ErrInvalid, err)
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		return errors.Join(ErrInvalid, err)
	}
	return nil
}

// Validate checks the translation settings used by the sync command.
func (c TranslateConfig) Validate() error {
	switch c.Backend {
	case BackendREST:
		if c.APIKey == "" {
			return fmt.Errorf("%w: TRANSLATE_API_KEY is required for the %s backend", ErrInvalid, c.Backend)
		}
	case BackendCloud, BackendNoop:
	default:
		return fmt.Errorf("%w: unknown translation backend %q", ErrInvalid, c.Backend)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: translation timeout must be positive", ErrInvalid)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: translation concurrency must be at least 1", ErrInvalid)
	}
	return nil
}

// MismatchPolicy parses the configured kind-mismatch policy.
func (c SyncConfig) MismatchPolicy() (keysync.MismatchPolicy, error) {
	p, err := keysync.ParseMismatchPolicy(c.Mismatch)
	if err != nil {
		return 0, errors.Join(ErrInvalid, err)
	}
	return p, nil
}
