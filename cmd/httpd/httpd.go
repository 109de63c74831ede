// Package httpd implements the dashboard server command.
package httpd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diskominfo-jombang/newsmon/cmd/common"
	"github.com/diskominfo-jombang/newsmon/internal/api"
	"github.com/diskominfo-jombang/newsmon/internal/config"
	"github.com/diskominfo-jombang/newsmon/internal/crawler"
	"github.com/diskominfo-jombang/newsmon/internal/domain"
	"github.com/diskominfo-jombang/newsmon/internal/logger"
	"github.com/diskominfo-jombang/newsmon/internal/scheduler"
)

const (
	errorChannelBufferSize = 1
	defaultShutdownTimeout = 30 * time.Second
)

// crawlControl joins the scheduler's trigger with the crawler's state so
// the API sees one surface.
type crawlControl struct {
	*scheduler.Scheduler
	*crawler.Crawler
}

// Command returns the httpd command.
func Command(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "httpd",
		Short: "Run the dashboard server",
		Long:  "Run the web dashboard, the JSON API and the hourly crawl scheduler until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Start(cmd.Context(), *debug)
		},
	}
}

// Start runs the server until the context is cancelled or a SIGINT or
// SIGTERM arrives.
func Start(ctx context.Context, debug bool) error {
	deps, err := common.NewDeps(debug)
	if err != nil {
		return err
	}
	log := deps.Logger.WithComponent("httpd")

	db, repo, err := deps.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	crawl, m, err := deps.BuildCrawler(repo)
	if err != nil {
		return err
	}

	sched := scheduler.New(crawl, deps.Logger, deps.Config.Crawler.Interval)
	if startErr := sched.Start(ctx); startErr != nil {
		return fmt.Errorf("start scheduler: %w", startErr)
	}
	defer sched.Stop()

	if deps.Config.Crawler.CrawlOnStartup {
		if crawlErr := crawl.RunAsync(ctx, domain.TriggerScheduled); crawlErr != nil {
			log.Warn("startup crawl not started", "error", crawlErr)
		}
	}

	handler := api.NewHandler(
		deps.BuildReports(repo),
		&crawlControl{Scheduler: sched, Crawler: crawl},
		deps.Logger,
		config.DefaultTrendDays,
		config.DefaultRecentLimit,
	)

	server := api.NewServer(handler, m.Handler(), api.ServerConfig{
		Address:      deps.Config.Server.Address,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
		Debug:        debug,
	}, deps.Logger)

	errChan := make(chan error, errorChannelBufferSize)
	go func() {
		log.Info("server listening", "address", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	return waitForShutdown(ctx, log, server, errChan)
}

// waitForShutdown blocks until a shutdown condition, then drains the
// server gracefully.
func waitForShutdown(
	ctx context.Context,
	log logger.Interface,
	server *http.Server,
	errChan <-chan error,
) error {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-sigCtx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return fmt.Errorf("shutdown server: %w", err)
	}
	log.Info("server stopped")
	return nil
}
