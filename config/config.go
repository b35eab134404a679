package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/blog-portal/internal/generator"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	ImagesTemplate = "template"
	ImagesHTTP     = "http"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host       string
		Port       int
		Storage    string
		LogQueries bool
		SlowQuery  time.Duration
	}
	Completion struct {
		Provider    string
		Model       string
		APIKey      string
		BaseURL     string
		Temperature float64
		MaxTokens   int
		Timeout     time.Duration
	}
	Images struct {
		Provider       string
		URLTemplate    string
		Endpoint       string
		Timeout        time.Duration
		RatePerSecond  float64
		FallbackImages []string
	}
	Catalog struct {
		Path string
	}
	Render struct {
		CacheSize int
	}
}

// ApplyDefaults fills zero values and overrides the database options with
// databaseURL when it is set.
func (c *Config) ApplyDefaults(databaseURL string) error {
	if databaseURL != "" {
		opt, err := pg.ParseURL(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to parse database URL: %w", err)
		}
		opt.PoolSize = c.Database.PoolSize
		opt.MaxRetries = c.Database.MaxRetries
		c.Database = *opt
	}
	if c.Database.MaxRetries == 0 {
		c.Database.MaxRetries = 3
	}

	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.Storage == "" {
		c.App.Storage = StoragePostgres
	}
	if c.App.SlowQuery == 0 {
		c.App.SlowQuery = 200 * time.Millisecond
	}

	if c.Completion.Provider == "" {
		c.Completion.Provider = generator.ProviderOpenAI
	}
	if c.Completion.Timeout == 0 {
		c.Completion.Timeout = 90 * time.Second
	}
	if c.Completion.Temperature == 0 {
		c.Completion.Temperature = 0.7
	}
	if c.Completion.MaxTokens == 0 {
		c.Completion.MaxTokens = 4000
	}

	if c.Images.Provider == "" {
		c.Images.Provider = ImagesTemplate
	}
	if c.Images.URLTemplate == "" {
		c.Images.URLTemplate = "https://source.unsplash.com/1600x900/?{query}&sig={seed}"
	}
	if c.Images.Timeout == 0 {
		c.Images.Timeout = 5 * time.Second
	}

	return c.validate()
}

func (c *Config) validate() error {
	switch c.App.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.App.Storage)
	}

	switch c.Images.Provider {
	case ImagesTemplate:
	case ImagesHTTP:
		if c.Images.Endpoint == "" {
			return fmt.Errorf("images endpoint is required for provider %q", ImagesHTTP)
		}
	default:
		return fmt.Errorf("unknown images provider %q", c.Images.Provider)
	}

	return nil
}

func (c *Config) CompletionSettings() generator.CompletionSettings {
	return generator.CompletionSettings{
		Provider:    c.Completion.Provider,
		Model:       c.Completion.Model,
		APIKey:      c.Completion.APIKey,
		BaseURL:     c.Completion.BaseURL,
		Temperature: c.Completion.Temperature,
		MaxTokens:   c.Completion.MaxTokens,
	}
}
