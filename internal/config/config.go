// Package config provides configuration management for the news monitor.
// Values come from an optional YAML file, environment variables, and
// defaults, in that order of precedence, all resolved through Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultDatabasePath   = "news.db"
	DefaultUserAgent      = "Mozilla/5.0 (compatible; KominfoScraper/1.0; +https://kominfo.go.id)"
	DefaultServerAddress  = ":8080"
	DefaultCrawlInterval  = time.Hour
	DefaultRequestTimeout = 15 * time.Second
	DefaultSourceLimit    = 20
	DefaultTopKeywords    = 20
	DefaultMinTokenLength = 3
	DefaultTrendDays      = 7
	DefaultRecentLimit    = 50

	minCrawlInterval = time.Minute
)

// Config represents the application configuration.
type Config struct {
	// Logger holds logging configuration.
	Logger LoggerConfig `mapstructure:"logger"`
	// Server holds HTTP server configuration.
	Server ServerConfig `mapstructure:"server"`
	// Database holds the article store configuration.
	Database DatabaseConfig `mapstructure:"database"`
	// Crawler holds crawl and scraping configuration.
	Crawler CrawlerConfig `mapstructure:"crawler"`
	// Keywords holds keyword extraction configuration.
	Keywords KeywordsConfig `mapstructure:"keywords"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds the article store configuration.
type DatabaseConfig struct {
	// Path is the location of the SQLite database file.
	Path string `mapstructure:"path"`
}

// CrawlerConfig holds crawl and scraping configuration.
type CrawlerConfig struct {
	// UserAgent identifies the scraper on outbound requests.
	UserAgent string `mapstructure:"user_agent"`
	// Interval is the cadence of scheduled crawls.
	Interval time.Duration `mapstructure:"interval"`
	// RequestTimeout bounds each scraper fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// SourceLimit caps the number of candidates taken from one source.
	SourceLimit int `mapstructure:"source_limit"`
	// SourceFile is the path of the source registry file. When the file
	// does not exist the built-in registry is used.
	SourceFile string `mapstructure:"source_file"`
	// CrawlOnStartup runs one crawl when the server starts, so a fresh
	// database has data before the first scheduled tick.
	CrawlOnStartup bool `mapstructure:"crawl_on_startup"`
}

// KeywordsConfig holds keyword extraction configuration.
type KeywordsConfig struct {
	// TopN is the number of keywords returned by reports.
	TopN int `mapstructure:"top_n"`
	// MinTokenLength drops tokens shorter than this many runes.
	MinTokenLength int `mapstructure:"min_token_length"`
	// ExtraStopwords is appended to the built-in Indonesian stop-word list.
	ExtraStopwords []string `mapstructure:"extra_stopwords"`
}

// Load builds a Config from the current Viper state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the application cannot
// operate with.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if c.Crawler.UserAgent == "" {
		return errors.New("crawler user agent is required")
	}
	if c.Crawler.Interval < minCrawlInterval {
		return fmt.Errorf("crawl interval %s is below the minimum %s", c.Crawler.Interval, minCrawlInterval)
	}
	if c.Crawler.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.Keywords.TopN <= 0 {
		return errors.New("keywords top_n must be positive")
	}
	return nil
}

// Init configures Viper: defaults, environment binding and the optional
// config file. It must run before Load.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Legacy environment variable names kept from the first deployment.
	if err := viper.BindEnv("database.path", "DB_PATH", "DATABASE_PATH"); err != nil {
		return fmt.Errorf("bind DB_PATH: %w", err)
	}
	if err := viper.BindEnv("crawler.user_agent", "USER_AGENT"); err != nil {
		return fmt.Errorf("bind USER_AGENT: %w", err)
	}
	if err := viper.BindEnv("server.address", "SERVER_ADDRESS"); err != nil {
		return fmt.Errorf("bind SERVER_ADDRESS: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("bind LOG_LEVEL: %w", err)
	}

	setDefaults()

	// The config file is optional: defaults plus environment variables are
	// a complete configuration.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"encoding":    "console",
		"development": false,
	})

	viper.SetDefault("server", map[string]any{
		"address":       DefaultServerAddress,
		"read_timeout":  "15s",
		"write_timeout": "30s",
		"idle_timeout":  "60s",
	})

	viper.SetDefault("database", map[string]any{
		"path": DefaultDatabasePath,
	})

	viper.SetDefault("crawler", map[string]any{
		"user_agent":       DefaultUserAgent,
		"interval":         DefaultCrawlInterval.String(),
		"request_timeout":  DefaultRequestTimeout.String(),
		"source_limit":     DefaultSourceLimit,
		"source_file":      "sources.yml",
		"crawl_on_startup": true,
	})

	viper.SetDefault("keywords", map[string]any{
		"top_n":            DefaultTopKeywords,
		"min_token_length": DefaultMinTokenLength,
	})
}
