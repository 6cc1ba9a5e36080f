// Package config loads the settings of the pjobs command.
//
// Settings come, by increasing priority, from the defaults, a YAML file, a
// ".env" file and the environment. Command line flags override them all.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "pricejobs.yaml"

// EnvFile names the configuration file when none is given.
const EnvFile = "PRICEJOBS_CONFIG"

// Config holds the program settings.
type Config struct {
	Ledger           string `yaml:"ledger" env:"PRICEJOBS_LEDGER"`                       // Ledger is the JSONL ledger file.
	DefaultNamespace string `yaml:"default_namespace" env:"PRICEJOBS_DEFAULT_NAMESPACE"` // DefaultNamespace holds the built-in providers.
	ProvidersFile    string `yaml:"providers_file" env:"PRICEJOBS_PROVIDERS_FILE"`       // ProvidersFile declares extra providers, optional.
	ProvidersQuery   string `yaml:"providers_query" env:"PRICEJOBS_PROVIDERS_QUERY"`     // ProvidersQuery is a JSONPath in ProvidersFile.
	LogLevel         string `yaml:"log_level" env:"PRICEJOBS_LOG_LEVEL"`
	LogFormat        string `yaml:"log_format" env:"PRICEJOBS_LOG_FORMAT"` // LogFormat is "text" or "json".
}

// Default returns the default settings.
func Default() Config {
	return Config{
		Ledger:           "ledger.jsonl",
		DefaultNamespace: "builtin",
		ProvidersQuery:   "$.providers",
		LogLevel:         "warning",
		LogFormat:        "text",
	}
}

// Load returns the settings read from path, then from ".env" and the
// environment. If path is empty the EnvFile variable is used, or else
// DefaultFile when it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvFile)
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("cannot open config: %w", err)
		}
		defer f.Close()
		if err := decodeYAML(f, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
		}
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return cfg, fmt.Errorf("cannot read .env: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overrides cfg with the PRICEJOBS_* environment variables that are set.
func applyEnv(cfg *Config) error {
	err := envdecode.Decode(cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("cannot read environment: %w", err)
	}
	return nil
}

// NewLogger returns a logger configured with the level and format settings.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	switch c.LogFormat {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q, want text or json", c.LogFormat)
	}
	return log, nil
}
