// Package parser turns hand-typed session planning notes into structured
// session drafts.
//
// The input format uses ━━━ dividers, ■ section headers, circled numbers
// ①–⑩ for blocks and ▶ for transitions. Parsing never fails: missing pieces
// come back as empty values and the caller decides whether to reject them.
package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/creait/sessionkit/internal/model"
)

// Section name markers, matched by substring containment.
const (
	SummaryMarker  = "세션 목표"
	GoalsMarker    = "오늘 배우는 것"
	TimelineMarker = "타임라인 상세"
)

// TransitionPrefix is prepended to transition text merged into the next block.
const TransitionPrefix = "[연결] "

// sp matches one whitespace rune. Pasted documents carry NBSP, U+3000 and a
// leading BOM, none of which RE2's \s covers.
const sp = `[\s\p{Zs}\x{FEFF}]`

var (
	lineBreakRe = regexp.MustCompile(`\r?\n`)
	dividerRe   = regexp.MustCompile(`^[━─]{3,}`)
	sectionRe   = regexp.MustCompile(`^■` + sp + `*(.+)`)
)

// ParsedBlock is one instructional unit extracted from the timeline.
type ParsedBlock struct {
	Order       int             `json:"order" yaml:"order"`
	Type        model.BlockType `json:"type" yaml:"type"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
}

// ParsedSession is the full extraction result.
type ParsedSession struct {
	Title         string        `json:"title" yaml:"title"`
	Date          string        `json:"date" yaml:"date"`
	Summary       string        `json:"summary" yaml:"summary"`
	Goals         []string      `json:"goals" yaml:"goals"`
	Prerequisites []string      `json:"prerequisites" yaml:"prerequisites"`
	Blocks        []ParsedBlock `json:"blocks" yaml:"blocks"`
}

// Parse parses raw session text. Short-dated headers get the current year.
func Parse(raw string) ParsedSession {
	return ParseAt(raw, time.Now())
}

// ParseAt is Parse with an explicit clock for the short-date year default.
func ParseAt(raw string, now time.Time) ParsedSession {
	sections := splitSections(raw)
	title, date := parseHeader(sections.get(headerKey), now.Year())

	summary := ""
	if name, ok := sections.find(SummaryMarker); ok {
		summary = parseSummary(sections.get(name))
	}

	goals := []string{}
	if name, ok := sections.find(GoalsMarker); ok {
		goals = parseGoals(sections.get(name))
	}

	return ParsedSession{
		Title:         title,
		Date:          date,
		Summary:       summary,
		Goals:         goals,
		Prerequisites: []string{},
		Blocks:        parseBlocks(sections),
	}
}

func splitLines(text string) []string {
	return lineBreakRe.Split(text, -1)
}

func isDivider(trimmed string) bool {
	return dividerRe.MatchString(trimmed)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// trim strips whitespace as isSpace defines it from both ends of s.
func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func joinTrimmed(lines []string) string {
	return trim(strings.Join(lines, "\n"))
}
