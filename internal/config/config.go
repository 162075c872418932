package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	ContentSourceFS   = "fs"
	ContentSourceHTTP = "http"

	// Environment overrides. The base URL differs between production and a
	// local run, so it is taken from the environment when set.
	envListen  = "DOCVIEWER_LISTEN"
	envBaseURL = "DOCVIEWER_BASE_URL"
	envWorkDir = "DOCVIEWER_WORKDIR"

	defaultListen       = ":8080"
	defaultWorkers      = 4
	defaultFetchTimeout = Duration(10 * time.Second)
)

// Duration lets yaml carry values like "3s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("cannot parse duration %q: %w", raw, err)
	}

	*d = Duration(v)

	return nil
}

type ScannerConfig struct {
	WorkDir   string   `yaml:"work_dir"`
	Workers   int      `yaml:"workers"`
	SkipNames []string `yaml:"skip_names"`
}

type ContentConfig struct {
	Source       string   `yaml:"source"` // fs or http
	BaseURL      string   `yaml:"base_url"`
	FetchTimeout Duration `yaml:"fetch_timeout"`
}

type Config struct {
	Listen           string        `yaml:"listen"`
	LogLevel         string        `yaml:"log_level"`
	TemplateFileName string        `yaml:"template_filename"`
	ScannerConfig    ScannerConfig `yaml:"scanner"`
	ContentConfig    ContentConfig `yaml:"content"`
}

func (c *Config) SetDefaults() {
	c.Listen = defaultListen
	c.LogLevel = LogLevelInfo
	c.ScannerConfig.Workers = defaultWorkers
	c.ContentConfig.Source = ContentSourceFS
	c.ContentConfig.FetchTimeout = defaultFetchTimeout
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envListen); v != "" {
		c.Listen = v
	}
	if v := os.Getenv(envBaseURL); v != "" {
		c.ContentConfig.BaseURL = v
	}
	if v := os.Getenv(envWorkDir); v != "" {
		c.ScannerConfig.WorkDir = v
	}
}

func (c *Config) validate() error {
	if c.ScannerConfig.WorkDir == "" {
		return fmt.Errorf("work_dir must be set")
	}

	if c.ScannerConfig.Workers < 1 {
		return fmt.Errorf("workers must be positive")
	}

	switch c.ContentConfig.Source {
	case ContentSourceFS:
	case ContentSourceHTTP:
		if c.ContentConfig.BaseURL == "" {
			return fmt.Errorf("base_url must be set for http content source")
		}
	default:
		return fmt.Errorf("unknown content source: %s", c.ContentConfig.Source)
	}

	return nil
}

func Load(path string) (*Config, error) {
	// A missing .env file is fine, the environment may be set by the host.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.SetDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}
