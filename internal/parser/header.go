package parser

import (
	"fmt"
	"regexp"
)

// Header lines look like "3/9 Session 1 — 제목" or "2026-03-09 Session — 제목".
// The session number is optional and the separator may be —, - or –.
var (
	headerISORe   = regexp.MustCompile(`(?i)(\d{4})-(\d{2})-(\d{2})` + sp + `+Session(?:` + sp + `+\d+)?` + sp + `*[—\-–]` + sp + `*(.+)`)
	headerShortRe = regexp.MustCompile(`(?i)(\d{1,2})/(\d{1,2})` + sp + `+Session(?:` + sp + `+\d+)?` + sp + `*[—\-–]` + sp + `*(.+)`)
)

// parseHeader extracts the title and ISO date from the first header line.
// Short dates take the given year.
func parseHeader(header string, year int) (title, date string) {
	for _, line := range splitLines(header) {
		trimmed := trim(line)

		if m := headerISORe.FindStringSubmatch(trimmed); m != nil {
			return trim(m[4]), m[1] + "-" + m[2] + "-" + m[3]
		}

		if m := headerShortRe.FindStringSubmatch(trimmed); m != nil {
			return trim(m[3]), fmt.Sprintf("%04d-%s-%s", year, padTwo(m[1]), padTwo(m[2]))
		}
	}
	return "", ""
}

func padTwo(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
