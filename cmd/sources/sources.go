// Package sources implements commands for inspecting the source
// registry.
package sources

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/diskominfo-jombang/newsmon/cmd/common"
	"github.com/diskominfo-jombang/newsmon/internal/scraper"
)

// Command returns the sources command with its subcommands.
func Command(debug *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage news sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(listCommand(debug))
	cmd.AddCommand(validateCommand(debug))
	return cmd
}

func listCommand(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured news sources",
		RunE: func(_ *cobra.Command, _ []string) error {
			configs, err := loadConfigs(*debug)
			if err != nil {
				return err
			}
			renderSources(configs)
			return nil
		},
	}
}

func validateCommand(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the source registry file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configs, err := loadConfigs(*debug)
			if err != nil {
				return err
			}
			for i := range configs {
				if validateErr := configs[i].Validate(); validateErr != nil {
					return fmt.Errorf("source %q: %w", configs[i].Name, validateErr)
				}
			}
			cmd.Printf("%d sources OK\n", len(configs))
			return nil
		},
	}
}

func loadConfigs(debug bool) ([]scraper.SourceConfig, error) {
	deps, err := common.NewDeps(debug)
	if err != nil {
		return nil, err
	}
	return scraper.LoadSources(deps.Config.Crawler.SourceFile, deps.Logger)
}

// renderSources prints the registry as a table on stdout.
func renderSources(configs []scraper.SourceConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Type", "URL", "Item Selector", "Limit"})

	for _, src := range configs {
		t.AppendRow(table.Row{src.Name, src.Type, src.URL, src.ItemSelector, src.Limit})
	}
	t.Render()
}
