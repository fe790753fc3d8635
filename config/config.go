package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by Load.
const (
	EnvWorkers      = "GRIDPATH_WORKERS"
	EnvMaxScenarios = "GRIDPATH_MAX_SCENARIOS"
	EnvLogLevel     = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat    = "GRIDPATH_LOG_FORMAT"
	EnvTracing      = "GRIDPATH_TRACING"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the complete gridpath configuration.
type Config struct {
	// Search bounds a single A* search.
	Search SearchConfig `yaml:"search"`
	// Cheats configures the shortcut analyzer.
	Cheats CheatsConfig `yaml:"cheats"`
	// Scenario configures the parallel scans.
	Scenario ScenarioConfig `yaml:"scenario"`
	// Log configures the slog handler.
	Log LogConfig `yaml:"log"`
	// Observability toggles spans and metrics output.
	Observability ObservabilityConfig `yaml:"observability"`
}

type SearchConfig struct {
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`
}

type CheatsConfig struct {
	MaxDistance int `yaml:"max_distance" validate:"gte=0"`
	MinSavings  int `yaml:"min_savings" validate:"gte=0"`
}

type ScenarioConfig struct {
	Workers      int `yaml:"workers" validate:"gte=0"`
	MaxScenarios int `yaml:"max_scenarios" validate:"gte=0"`
	MinSavings   int `yaml:"min_savings" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"slog_level"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type ObservabilityConfig struct {
	// Tracing writes finished spans to stderr.
	Tracing bool `yaml:"tracing"`
	// MetricsFile, when set, receives the Prometheus text exposition on exit.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{MaxExpansions: 0},
		Cheats: CheatsConfig{
			MaxDistance: 2,
			MinSavings:  1,
		},
		Scenario: ScenarioConfig{
			Workers:      0, // NumCPU
			MaxScenarios: 0,
			MinSavings:   1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty), a .env file in the working directory if present, and
// the GRIDPATH_* environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// A missing .env is fine; real environment variables win over it.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvWorkers, v, err)
		}
		c.Scenario.Workers = n
	}
	if v := os.Getenv(EnvMaxScenarios); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMaxScenarios, v, err)
		}
		c.Scenario.MaxScenarios = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvTracing); v != "" {
		c.Observability.Tracing = v == "true" || v == "1"
	}

	return nil
}

// validate checks Config struct tags; field names in errors follow the YAML keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slog_level", func(fl validator.FieldLevel) bool {
		var lvl slog.Level
		return lvl.UnmarshalText([]byte(fl.Field().String())) == nil
	})

	return v
}

// Validate checks every field and reports the first violation as
// ErrInvalidConfig, naming the field by its YAML path.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	if fe.Param() != "" {
		return fmt.Errorf("%w: %s must satisfy %s=%s, got %v", ErrInvalidConfig, field, fe.Tag(), fe.Param(), fe.Value())
	}

	return fmt.Errorf("%w: %s fails %s, got %v", ErrInvalidConfig, field, fe.Tag(), fe.Value())
}

// SlogLevel parses Log.Level ("debug", "info", "warn", "error", or offsets
// such as "info+2").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q: %w", ErrInvalidConfig, c.Log.Level, err)
	}

	return lvl, nil
}
