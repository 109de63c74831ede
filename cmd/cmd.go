// Package cmd implements the command-line interface for the news
// monitoring dashboard.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/diskominfo-jombang/newsmon/cmd/crawl"
	"github.com/diskominfo-jombang/newsmon/cmd/httpd"
	"github.com/diskominfo-jombang/newsmon/cmd/sources"
	"github.com/diskominfo-jombang/newsmon/internal/config"
)

// version is set at build time with -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "newsmon",
		Short: "Local news monitoring dashboard for Kabupaten Jombang",
		Long: `newsmon crawls Jombang news sources on a schedule, stores the
articles in SQLite and serves a dashboard with trend, keyword and word
cloud reports plus a PDF export.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are visible to Viper.
	_ = godotenv.Load()

	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := config.Init(cfgFile); err != nil {
		return fmt.Errorf("initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("newsmon version %s\n", version)
		},
	})

	rootCmd.AddCommand(httpd.Command(&debug))
	rootCmd.AddCommand(crawl.Command(&debug))
	rootCmd.AddCommand(sources.Command(&debug))
}
