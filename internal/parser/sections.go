package parser

import "strings"

// headerKey holds the text before the first ■ header. Real section names are
// trimmed and non-empty, so the empty string can never collide with one.
const headerKey = ""

// sectionMap is an insertion-ordered map of section name to body text.
type sectionMap struct {
	names  []string
	bodies map[string]string
}

func newSectionMap() *sectionMap {
	return &sectionMap{bodies: make(map[string]string)}
}

// set stores body under name. A repeated name keeps its first position.
func (m *sectionMap) set(name, body string) {
	if _, ok := m.bodies[name]; !ok {
		m.names = append(m.names, name)
	}
	m.bodies[name] = body
}

func (m *sectionMap) get(name string) string {
	return m.bodies[name]
}

// find returns the first section name, in document order, containing substr.
func (m *sectionMap) find(substr string) (string, bool) {
	if i := m.index(substr); i >= 0 {
		return m.names[i], true
	}
	return "", false
}

func (m *sectionMap) index(substr string) int {
	for i, name := range m.names {
		if name != headerKey && strings.Contains(name, substr) {
			return i
		}
	}
	return -1
}

// splitSections splits text into sections delimited by ■ headers.
// Divider lines are dropped entirely.
func splitSections(text string) *sectionMap {
	sections := newSectionMap()
	current := headerKey
	var buf []string

	for _, line := range splitLines(text) {
		trimmed := trim(line)
		if isDivider(trimmed) {
			continue
		}
		if m := sectionRe.FindStringSubmatch(trimmed); m != nil {
			sections.set(current, joinTrimmed(buf))
			current = trim(m[1])
			buf = nil
			continue
		}
		buf = append(buf, line)
	}
	sections.set(current, joinTrimmed(buf))

	return sections
}
