package config

import (
	"bytes"
	"checkers/meta"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Search     Search     `yaml:"search"`
	UI         UI         `yaml:"ui"`
	Log        Log        `yaml:"log"`
	Experiment Experiment `yaml:"experiment"`
}

type Search struct {
	Mode       string `yaml:"mode" validate:"oneof=minimax greedy"`
	Depth      int    `yaml:"depth" validate:"min=1,max=10"`
	Goroutines int    `yaml:"goroutines" validate:"min=1,max=256"`
}

type UI struct {
	Mode  string `yaml:"mode" validate:"oneof=tui line"`
	Theme string `yaml:"theme" validate:"oneof=classic mono"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `yaml:"pretty"`
}

type Experiment struct {
	Name     string `yaml:"name" validate:"oneof=depth throughput"`
	Games    int    `yaml:"games" validate:"min=1"`
	OutDir   string `yaml:"out_dir" validate:"required"`
	MaxTurns int    `yaml:"max_turns" validate:"min=1"`
	Seed     uint64 `yaml:"seed"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Search: Search{
			Mode:       "minimax",
			Depth:      meta.SEARCH_DEPTH,
			Goroutines: meta.GO_ROUTINES,
		},
		UI: UI{
			Mode:  "tui",
			Theme: "classic",
		},
		Log: Log{
			Level:  "info",
			Pretty: true,
		},
		Experiment: Experiment{
			Name:     "depth",
			Games:    meta.GAMES,
			OutDir:   "experiments",
			MaxTurns: meta.MAX_TURNS,
			Seed:     1,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its tag and reports all failures at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	var details strings.Builder
	for _, e := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", field))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", field, e.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}
