package parser

import (
	"regexp"
	"strings"

	"github.com/creait/sessionkit/internal/model"
)

// CircledNumbers are the glyphs that open a new content block.
const CircledNumbers = "①②③④⑤⑥⑦⑧⑨⑩"

var (
	blockStartRe = regexp.MustCompile(`^[` + CircledNumbers + `]` + sp + `*(.+)`)
	transitionRe = regexp.MustCompile(`^▶` + sp + `*(.+)`)
)

// rawBlock is a block as scanned, before transitions are merged forward.
type rawBlock struct {
	title        string
	lines        []string
	isTransition bool
}

func (b *rawBlock) body() string {
	return joinTrimmed(b.lines)
}

// parseBlocks builds the ordered block list from the timeline section and
// every section after it.
func parseBlocks(sections *sectionMap) []ParsedBlock {
	text, ok := linearizeTimeline(sections)
	if !ok {
		return []ParsedBlock{}
	}
	return mergeTransitions(scanBlocks(text))
}

// linearizeTimeline flattens the timeline section and the sections following
// it back into plain text. Later sections get their ■ header line back so the
// block scan can see where they start.
func linearizeTimeline(sections *sectionMap) (string, bool) {
	start := sections.index(TimelineMarker)
	if start < 0 {
		return "", false
	}

	var sb strings.Builder
	for i, name := range sections.names[start:] {
		body := sections.get(name)
		if i == 0 {
			sb.WriteString(body)
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("\n■ ")
		sb.WriteString(name)
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String(), true
}

// scanBlocks splits linearized timeline text into raw blocks. Lines before the
// first marker are dropped.
func scanBlocks(text string) []*rawBlock {
	var blocks []*rawBlock
	var current *rawBlock

	open := func(title string, transition bool) {
		if current != nil {
			blocks = append(blocks, current)
		}
		current = &rawBlock{title: trim(title), isTransition: transition}
	}

	for _, line := range splitLines(text) {
		trimmed := trim(line)
		if trimmed == "" || isDivider(trimmed) {
			continue
		}

		if m := blockStartRe.FindStringSubmatch(trimmed); m != nil {
			open(m[1], false)
			continue
		}
		if m := transitionRe.FindStringSubmatch(trimmed); m != nil {
			open(m[1], true)
			continue
		}
		if m := sectionRe.FindStringSubmatch(trimmed); m != nil {
			open(m[1], false)
			continue
		}

		if current != nil {
			current.lines = append(current.lines, line)
		}
	}
	if current != nil {
		blocks = append(blocks, current)
	}

	return blocks
}

// mergeTransitions folds each transition into the description of the next
// real block. Only the last transition before a block survives, and a
// trailing transition is dropped.
func mergeTransitions(raw []*rawBlock) []ParsedBlock {
	merged := []ParsedBlock{}
	pending := ""

	for _, rb := range raw {
		desc := rb.body()
		if rb.isTransition {
			if desc != "" {
				pending = TransitionPrefix + desc
			} else {
				pending = TransitionPrefix + rb.title
			}
			continue
		}

		if pending != "" {
			desc = pending + "\n\n" + desc
			pending = ""
		}

		merged = append(merged, ParsedBlock{
			Order:       len(merged),
			Type:        model.BlockFlow,
			Title:       rb.title,
			Description: desc,
		})
	}

	return merged
}
