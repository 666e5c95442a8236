package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Scrape ScrapeConfig `yaml:"scrape" json:"scrape" jsonschema:"description=Feed scraping configuration"`
	Hunter HunterConfig `yaml:"hunter" json:"hunter" jsonschema:"description=Email finder configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=HTTP server timeout"`
}

// ScrapeConfig holds feed fetching and aggregation settings
type ScrapeConfig struct {
	FeedTimeout    time.Duration `yaml:"feed_timeout" json:"feed_timeout" jsonschema:"default=10s,description=Timeout for a single feed fetch"`
	MaxEntries     int           `yaml:"max_entries" json:"max_entries" jsonschema:"default=20,minimum=1,description=Entries inspected per feed"`
	MaxArticles    int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=5,minimum=1,description=Recent articles kept per journalist"`
	Concurrency    int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=8,minimum=1,description=Feeds fetched at once"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests"`
	PublishersFile string        `yaml:"publishers_file" json:"publishers_file" jsonschema:"description=YAML file replacing the embedded publisher registry"`
}

// HunterConfig holds email finder settings
type HunterConfig struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.hunter.io,description=Email finder API base URL"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Lookup request timeout"`
	MinConfidence int           `yaml:"min_confidence" json:"min_confidence" jsonschema:"default=70,minimum=0,maximum=100,description=Lowest score accepted as verified email"`
	Concurrency   int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=4,minimum=1,description=Lookups in flight"`
	RateLimit     float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=10,minimum=0,description=Lookups per second"`
	Attempts      int           `yaml:"attempts" json:"attempts" jsonschema:"default=1,minimum=1,description=Attempts per lookup on transport failures"`
}

// Default returns configuration with all defaults set
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// warn but don't fail, schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 120 * time.Second
	}

	// scrape
	if cfg.Scrape.FeedTimeout == 0 {
		cfg.Scrape.FeedTimeout = 10 * time.Second
	}
	if cfg.Scrape.MaxEntries == 0 {
		cfg.Scrape.MaxEntries = 20
	}
	if cfg.Scrape.MaxArticles == 0 {
		cfg.Scrape.MaxArticles = 5
	}
	if cfg.Scrape.Concurrency == 0 {
		cfg.Scrape.Concurrency = 8
	}

	// hunter
	if cfg.Hunter.Endpoint == "" {
		cfg.Hunter.Endpoint = "https://api.hunter.io"
	}
	if cfg.Hunter.Timeout == 0 {
		cfg.Hunter.Timeout = 10 * time.Second
	}
	if cfg.Hunter.MinConfidence == 0 {
		cfg.Hunter.MinConfidence = 70
	}
	if cfg.Hunter.Concurrency == 0 {
		cfg.Hunter.Concurrency = 4
	}
	if cfg.Hunter.RateLimit == 0 {
		cfg.Hunter.RateLimit = 10
	}
	if cfg.Hunter.Attempts == 0 {
		cfg.Hunter.Attempts = 1
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	// validate server config
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate scrape config
	if c.Scrape.FeedTimeout < 100*time.Millisecond {
		return fmt.Errorf("scrape.feed_timeout must be at least 100ms")
	}
	if c.Scrape.MaxEntries < 1 {
		return fmt.Errorf("scrape.max_entries must be at least 1")
	}
	if c.Scrape.MaxArticles < 1 {
		return fmt.Errorf("scrape.max_articles must be at least 1")
	}
	if c.Scrape.Concurrency < 1 {
		return fmt.Errorf("scrape.concurrency must be at least 1")
	}

	// validate hunter config
	if c.Hunter.MinConfidence < 0 || c.Hunter.MinConfidence > 100 {
		return fmt.Errorf("hunter.min_confidence must be between 0 and 100")
	}
	if c.Hunter.Concurrency < 1 {
		return fmt.Errorf("hunter.concurrency must be at least 1")
	}
	if c.Hunter.RateLimit < 0 {
		return fmt.Errorf("hunter.rate_limit must be non-negative")
	}
	if c.Hunter.Attempts < 1 {
		return fmt.Errorf("hunter.attempts must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
