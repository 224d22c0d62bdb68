package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/books"
	"github.com/chaekmaru/chaekmaru/internal/classify"
	"github.com/chaekmaru/chaekmaru/internal/curriculum"
	"github.com/chaekmaru/chaekmaru/internal/enrich"
	"github.com/chaekmaru/chaekmaru/internal/report"
)

func newRoadmapCommand() *cobra.Command {
	age := &ageValue{months: 60}
	var (
		propensity string
		exportPDF  bool
	)

	command := &cobra.Command{
		Use:   "roadmap <keyword>",
		Short: "Generate a 3-week reading roadmap for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalogClient, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			repository := books.NewDBRepository(db)
			pipeline := enrich.NewPipeline(catalogClient, classify.NewClassifier(), nil, repository)
			service := curriculum.NewService(repository, pipeline)

			weeks, err := service.GenerateRoadmap(cmd.Context(), keyword, age.months,
				curriculum.Propensity(propensity))
			if err != nil {
				return fmt.Errorf("service.GenerateRoadmap > %w", err)
			}

			printRoadmap(keyword, age.months, weeks)

			if exportPDF {
				markdownPath := filepath.Join(cfg.Reports.Directory,
					fmt.Sprintf("roadmap-%s-%d.md", keyword, age.months))
				if err := report.SaveMarkdown(markdownPath, report.RenderRoadmap(keyword, age.months, weeks)); err != nil {
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
	command.Flags().StringVar(&propensity, "propensity", "", "child propensity: 활동적 or 차분함")
	command.Flags().BoolVar(&exportPDF, "pdf", false, "export the roadmap as a PDF report")

	return command
}

func printRoadmap(keyword string, ageMonths int, weeks []curriculum.WeekPlan) {
	bold := color.New(color.Bold)
	bold.Printf("'%s' 3주 독서 로드맵 (%d개월)\n\n", keyword, ageMonths)

	for _, week := range weeks {
		bold.Printf("%d주차 · %s\n", week.Week, week.Label)
		if len(week.Entries) == 0 {
			fmt.Println("  이번 주에 추천할 책을 찾지 못했어요.")
			continue
		}
		for _, entry := range week.Entries {
			fmt.Printf("  - %s", entry.Book.Title)
			if entry.Book.Author != "" {
				fmt.Printf(" (%s)", entry.Book.Author)
			}
			fmt.Println()
			fmt.Printf("    %s\n", entry.Reason)
		}
		fmt.Println()
	}
}
