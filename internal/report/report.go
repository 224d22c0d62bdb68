// Package report renders roadmaps and dashboards to markdown and exports
// them as PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/chaekmaru/chaekmaru/internal/curriculum"
	"github.com/chaekmaru/chaekmaru/internal/shelf"
)

// RenderRoadmap renders a 3-week reading plan as markdown.
func RenderRoadmap(keyword string, ageMonths int, weeks []curriculum.WeekPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# '%s' 3주 독서 로드맵\n\n", keyword)
	fmt.Fprintf(&b, "대상 연령: %d개월\n\n", ageMonths)

	for _, week := range weeks {
		fmt.Fprintf(&b, "## %d주차 · %s\n\n", week.Week, week.Label)
		if len(week.Entries) == 0 {
			b.WriteString("이번 주에 추천할 책을 찾지 못했어요.\n\n")
			continue
		}
		for _, entry := range week.Entries {
			fmt.Fprintf(&b, "- **%s**", entry.Book.Title)
			if entry.Book.Author != "" {
				fmt.Fprintf(&b, " (%s)", entry.Book.Author)
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "  - %s\n", entry.Reason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDashboard renders a composed shelf dashboard as markdown.
func RenderDashboard(ageMonths int, dashboard *shelf.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d개월 추천 책장\n\n", ageMonths)
	fmt.Fprintf(&b, "발달 단계: %d단계 %s — %s\n\n",
		dashboard.Stage.Number, dashboard.Stage.Label, dashboard.Stage.Description)

	if dashboard.Hero != nil {
		fmt.Fprintf(&b, "## 오늘의 책\n\n")
		writeItem(&b, *dashboard.Hero)
		b.WriteString("\n")
	}

	if len(dashboard.Spotlight) > 0 {
		b.WriteString("## 주목할 책\n\n")
		for _, item := range dashboard.Spotlight {
			writeItem(&b, item)
		}
		b.WriteString("\n")
	}

	for _, categoryShelf := range dashboard.Shelves {
		fmt.Fprintf(&b, "## %s\n\n", categoryShelf.Category)
		if len(categoryShelf.Items) == 0 {
			b.WriteString("아직 모은 책이 없어요.\n\n")
			continue
		}
		for _, item := range categoryShelf.Items {
			writeItem(&b, item)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeItem(b *strings.Builder, item shelf.RankedItem) {
	fmt.Fprintf(b, "- **%s** · %s", item.Record.Title, item.Record.Publisher)
	if len(item.Badges) > 0 {
		fmt.Fprintf(b, " [%s]", strings.Join(item.Badges, ", "))
	}
	b.WriteString("\n")
	if item.Record.Summary != "" {
		fmt.Fprintf(b, "  - %s\n", item.Record.Summary)
	}
}
