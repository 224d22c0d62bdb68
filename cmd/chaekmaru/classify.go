package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/classify"
)

func newClassifyCommand() *cobra.Command {
	var categoryLabel string

	command := &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify book text against the developmental taxonomy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			result := classify.NewClassifier().Classify(text, categoryLabel)

			bold := color.New(color.Bold)
			bold.Println(text)
			fmt.Println()

			areas := make([]string, 0, len(result.Areas))
			for _, area := range result.Areas {
				areas = append(areas, string(area))
			}
			fmt.Printf("발달 영역:    %s\n", orDash(strings.Join(areas, ", ")))
			fmt.Printf("세부 역량:    %s\n", orDash(strings.Join(result.SubCompetencies, ", ")))
			fmt.Printf("태그:         %s\n", orDash(strings.Join(result.Tags, ", ")))
			fmt.Printf("판형:         %s\n", result.Form)
			fmt.Printf("워크북:       %t\n", result.IsWorkbook)
			fmt.Printf("추천 연령:    %d~%d개월\n", result.MinAgeMonths, result.MaxAgeMonths)
			fmt.Printf("에너지 레벨:  %d\n", result.EnergyLevel)
			if result.Volume != nil {
				fmt.Printf("권호:         %d\n", *result.Volume)
			}
			fmt.Printf("한 줄 소개:   %s\n", result.Blurb)
			return nil
		},
	}

	command.Flags().StringVar(&categoryLabel, "category", "", "catalog category label, e.g. \"유아 > 전집 > 자연관찰\"")

	return command
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
