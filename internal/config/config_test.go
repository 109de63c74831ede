package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Logger: LoggerConfig{Level: "info", Encoding: "console"},
		Server: ServerConfig{Address: ":8080"},
		Database: DatabaseConfig{
			Path: "news.db",
		},
		Crawler: CrawlerConfig{
			UserAgent:      DefaultUserAgent,
			Interval:       time.Hour,
			RequestTimeout: 15 * time.Second,
			SourceLimit:    20,
			SourceFile:     "sources.yml",
		},
		Keywords: KeywordsConfig{
			TopN:           20,
			MinTokenLength: 3,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database path",
		},
		{
			name:    "missing user agent",
			mutate:  func(c *Config) { c.Crawler.UserAgent = "" },
			wantErr: "user agent",
		},
		{
			name:    "interval below minimum",
			mutate:  func(c *Config) { c.Crawler.Interval = 10 * time.Second },
			wantErr: "crawl interval",
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.Crawler.RequestTimeout = 0 },
			wantErr: "request timeout",
		},
		{
			name:    "zero top_n",
			mutate:  func(c *Config) { c.Keywords.TopN = 0 },
			wantErr: "top_n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitDefaults(t *testing.T) {
	// Init mutates global Viper state, so no t.Parallel here.
	require.NoError(t, Init(""))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	require.Equal(t, DefaultUserAgent, cfg.Crawler.UserAgent)
	require.Equal(t, DefaultCrawlInterval, cfg.Crawler.Interval)
	require.Equal(t, DefaultServerAddress, cfg.Server.Address)
	require.Equal(t, DefaultTopKeywords, cfg.Keywords.TopN)
	require.True(t, cfg.Crawler.CrawlOnStartup)
}

func TestInitEnvOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/override.db")
	t.Setenv("USER_AGENT", "TestAgent/1.0")
	t.Setenv("LOG_LEVEL", "debug")

	require.NoError(t, Init(""))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/tmp/override.db", cfg.Database.Path)
	require.Equal(t, "TestAgent/1.0", cfg.Crawler.UserAgent)
	require.Equal(t, "debug", cfg.Logger.Level)
}
