package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaekmaru/chaekmaru/internal/books"
	"github.com/chaekmaru/chaekmaru/internal/curriculum"
	"github.com/chaekmaru/chaekmaru/internal/report"
	"github.com/chaekmaru/chaekmaru/internal/shelf"
	"github.com/chaekmaru/chaekmaru/internal/stage"
)

func TestRenderRoadmap(t *testing.T) {
	weeks := []curriculum.WeekPlan{
		{Week: 1, Theme: "interest", Label: "흥미 붙이기", Entries: []curriculum.Entry{
			{Book: books.Book{Title: "공룡 체조", Author: "김작가"}, Reason: "신체운동 발달을 돕는 추천 그림책"},
		}},
		{Week: 2, Theme: "knowledge", Label: "지식 쌓기"},
		{Week: 3, Theme: "expansion", Label: "확장하기", Entries: []curriculum.Entry{
			{Book: books.Book{Title: "공룡 한글 워크북"}, Reason: "확장하기 단계에 어울리는 책이에요"},
		}},
	}

	markdown := report.RenderRoadmap("공룡", 60, weeks)
	assert.Contains(t, markdown, "# '공룡' 3주 독서 로드맵")
	assert.Contains(t, markdown, "대상 연령: 60개월")
	assert.Contains(t, markdown, "## 1주차 · 흥미 붙이기")
	assert.Contains(t, markdown, "**공룡 체조** (김작가)")
	assert.Contains(t, markdown, "이번 주에 추천할 책을 찾지 못했어요.")
	assert.Contains(t, markdown, "**공룡 한글 워크북**")
}

func TestRenderDashboard(t *testing.T) {
	hero := shelf.RankedItem{
		Record: shelf.Record{Title: "솔루토이 과학", Publisher: "교원", Summary: "호기심 자극 전집"},
		Badges: []string{shelf.BadgeCategoryTop, "세이펜"},
	}
	dashboard := &shelf.Dashboard{
		Stage: stage.Match(60),
		Hero:  &hero,
		Spotlight: []shelf.RankedItem{
			{Record: shelf.Record{Title: "호야토야 과학동화", Publisher: "교원"}},
		},
		Shelves: []shelf.CategoryShelf{
			{Category: "자연탐구", Items: []shelf.RankedItem{hero}},
			{Category: "사회관계"},
		},
	}

	markdown := report.RenderDashboard(60, dashboard)
	assert.Contains(t, markdown, "# 60개월 추천 책장")
	assert.Contains(t, markdown, "발달 단계: 3단계 유아 후기")
	assert.Contains(t, markdown, "## 오늘의 책")
	assert.Contains(t, markdown, "**솔루토이 과학** · 교원 [카테고리 베스트, 세이펜]")
	assert.Contains(t, markdown, "## 자연탐구")
	assert.Contains(t, markdown, "아직 모은 책이 없어요.")
}

func TestSaveMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "roadmap.md")

	require.NoError(t, report.SaveMarkdown(path, "# 제목\n"))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# 제목\n", string(content))

	require.Error(t, report.SaveMarkdown(filepath.Join(dir, "roadmap.txt"), "x"))
}

func TestConvertMarkdownToPDF_RejectsNonMarkdown(t *testing.T) {
	_, err := report.ConvertMarkdownToPDF("roadmap.txt")
	require.Error(t, err)
}
