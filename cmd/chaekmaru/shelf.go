package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/classify"
	"github.com/chaekmaru/chaekmaru/internal/report"
	"github.com/chaekmaru/chaekmaru/internal/shelf"
)

func newShelfCommand() *cobra.Command {
	age := &ageValue{months: 60}
	var exportPDF bool

	command := &cobra.Command{
		Use:   "shelf",
		Short: "Compose the age-targeted shelf dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			composer := shelf.NewComposer(shelf.NewDBRepository(db))
			dashboard := composer.Compose(cmd.Context(), age.months)

			printDashboard(age.months, dashboard)

			if exportPDF {
				markdownPath := filepath.Join(cfg.Reports.Directory,
					fmt.Sprintf("shelf-%d.md", age.months))
				if err := report.SaveMarkdown(markdownPath, report.RenderDashboard(age.months, dashboard)); err != nil {
					return fmt.Errorf("report.SaveMarkdown > %w", err)
				}
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF > %w", err)
				}
				fmt.Printf("\nSaved report: %s\n", pdfPath)
			}
			return nil
		},
	}

	command.Flags().Var(age, "age", "child age, e.g. 60, 60개월 or 5세")
	command.Flags().BoolVar(&exportPDF, "pdf", false, "export the dashboard as a PDF report")

	command.AddCommand(newShelfCollectCommand())

	return command
}

func newShelfCollectCommand() *cobra.Command {
	var maxResults int

	command := &cobra.Command{
		Use:   "collect <query>",
		Short: "Ingest catalog records as collection records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalogClient, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			socialClient, err := newSocialClient(cfg)
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			collector := shelf.NewCollector(catalogClient, socialClient,
				shelf.NewDBRepository(db), classify.NewClassifier())
			count, err := collector.CollectByQuery(cmd.Context(), args[0], maxResults)
			if err != nil {
				return fmt.Errorf("collector.CollectByQuery > %w", err)
			}
			fmt.Printf("Collected %d record(s).\n", count)
			return nil
		},
	}

	command.Flags().IntVar(&maxResults, "max", 20, "maximum number of records to fetch")

	return command
}

func printDashboard(ageMonths int, dashboard *shelf.Dashboard) {
	bold := color.New(color.Bold)

	bold.Printf("%d개월 · %d단계 %s\n", ageMonths, dashboard.Stage.Number, dashboard.Stage.Label)
	fmt.Println(dashboard.Stage.Description)
	fmt.Println()

	if dashboard.Hero != nil {
		color.Green("오늘의 책: %s (%s)", dashboard.Hero.Record.Title, dashboard.Hero.Record.Publisher)
	}
	for _, item := range dashboard.Spotlight {
		fmt.Printf("주목할 책: %s (%s)\n", item.Record.Title, item.Record.Publisher)
	}
	fmt.Println()

	for _, categoryShelf := range dashboard.Shelves {
		bold.Printf("[%s]\n", categoryShelf.Category)
		if len(categoryShelf.Items) == 0 {
			fmt.Println("  (비어 있음)")
			continue
		}
		for i, item := range categoryShelf.Items {
			line := fmt.Sprintf("  %d. %s · %s (score %.1f)",
				i+1, item.Record.Title, item.Record.Publisher, item.Score)
			if len(item.Badges) > 0 {
				line += " [" + strings.Join(item.Badges, ", ") + "]"
			}
			fmt.Println(line)
		}
	}
}
