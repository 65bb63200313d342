package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections_OrderAndBodies(t *testing.T) {
	text := "머리말\n━━━━━\n■ 첫째\n  들여쓴 본문\n\n둘째 줄\n──────\n■둘째\n내용\n"
	s := splitSections(text)

	assert.Equal(t, []string{headerKey, "첫째", "둘째"}, s.names)
	assert.Equal(t, "머리말", s.get(headerKey))
	assert.Equal(t, "들여쓴 본문\n\n둘째 줄", s.get("첫째"))
	assert.Equal(t, "내용", s.get("둘째"))
}

func TestSplitSections_HeaderKeyAlwaysPresent(t *testing.T) {
	s := splitSections("■ 바로 시작\n본문")

	require.NotEmpty(t, s.names)
	assert.Equal(t, headerKey, s.names[0])
	assert.Equal(t, "", s.get(headerKey))
}

func TestSplitSections_RepeatedNameKeepsPosition(t *testing.T) {
	s := splitSections("■ A\n1\n■ B\n2\n■ A\n3")

	assert.Equal(t, []string{headerKey, "A", "B"}, s.names)
	assert.Equal(t, "3", s.get("A"))
}

func TestSplitSections_ShortRuleIsNotDivider(t *testing.T) {
	s := splitSections("■ A\n━━\n───x")

	assert.Equal(t, "━━", s.get("A"))
}

func TestSectionMap_FindUsesContainment(t *testing.T) {
	s := splitSections("■ 세션 목표 및 개요\n요약\n■ 오늘 배우는 것들\n1. a")

	name, ok := s.find(SummaryMarker)
	require.True(t, ok)
	assert.Equal(t, "세션 목표 및 개요", name)

	name, ok = s.find(GoalsMarker)
	require.True(t, ok)
	assert.Equal(t, "오늘 배우는 것들", name)

	_, ok = s.find(TimelineMarker)
	assert.False(t, ok)
}

func TestParseSummary_CollapsesBlankLines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", parseSummary("  a  \n\n\n b\n\t\nc"))
	assert.Equal(t, "", parseSummary(""))
}

func TestParseGoals(t *testing.T) {
	text := "설명 문장\n1. 첫째\n2) 둘째\n  10.   열째  \n3.\n- 불릿은 무시\n4.붙여쓴 항목"
	assert.Equal(t, []string{"첫째", "둘째", "열째", "붙여쓴 항목"}, parseGoals(text))
	assert.Empty(t, parseGoals("목록 없음"))
}
