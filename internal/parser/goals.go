package parser

import (
	"regexp"
	"strings"
)

var numberedRe = regexp.MustCompile(`^\d+[.)]` + sp + `*(.+)`)

// parseSummary keeps every non-empty line, trimmed, and drops blank gaps.
func parseSummary(text string) string {
	var lines []string
	for _, line := range splitLines(text) {
		if l := trim(line); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

// parseGoals collects numbered items ("1. foo", "2) bar"). Other lines are
// commentary and get skipped.
func parseGoals(text string) []string {
	goals := []string{}
	for _, line := range splitLines(text) {
		if m := numberedRe.FindStringSubmatch(trim(line)); m != nil {
			goals = append(goals, trim(m[1]))
		}
	}
	return goals
}
