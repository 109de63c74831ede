// Package crawl implements the one-shot crawl command.
package crawl

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/diskominfo-jombang/newsmon/cmd/common"
	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// Command returns the crawl command.
func Command(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "crawl",
		Short: "Crawl all sources once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, *debug)
		},
	}
}

func run(cmd *cobra.Command, debug bool) error {
	ctx := cmd.Context()

	deps, err := common.NewDeps(debug)
	if err != nil {
		return err
	}

	db, repo, err := deps.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	crawler, _, err := deps.BuildCrawler(repo)
	if err != nil {
		return err
	}

	summary, err := crawler.Run(ctx, domain.TriggerManual)
	if err != nil {
		return fmt.Errorf("crawl: %w", err)
	}

	renderSummary(summary)

	if summary.FailedSources == len(summary.Sources) && len(summary.Sources) > 0 {
		return fmt.Errorf("all %d sources failed", summary.FailedSources)
	}
	return nil
}

// renderSummary prints the crawl result as a table on stdout.
func renderSummary(summary *domain.CrawlSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Candidates", "New", "Updated", "Store Errors", "Failed", "Duration"})

	for _, src := range summary.Sources {
		t.AppendRow(table.Row{
			src.Source,
			src.Candidates,
			src.New,
			src.Updated,
			src.StoreErrors,
			src.Failed,
			src.Duration.Round(time.Millisecond).String(),
		})
	}

	t.AppendFooter(table.Row{
		"total", "",
		summary.NewArticles,
		summary.Updated,
		summary.StoreErrors,
		summary.FailedSources,
		summary.Duration.Round(time.Millisecond).String(),
	})
	t.Render()
}
