package counsel

import (
	"regexp"
	"strings"
)

var (
	// blankRunRE collapses a blank run (newline, optional whitespace,
	// newline) into a single newline. One greedy pass is enough: \s*
	// swallows every interior newline of a longer run.
	blankRunRE = regexp.MustCompile(`\n\s*\n`)

	// markerRE strips list markers from an item line. Alternatives are
	// tried leftmost-first, so a numbered prefix wins over a bare dash.
	// The bare "-" and "*" alternatives match anywhere in the line, which
	// also eats hyphens inside words; the behavior is kept as is because
	// provider output is prose where that loss is acceptable.
	markerRE = regexp.MustCompile(`^\d+\.\s*|-|\*\s*|\s*-\s*|\s*\*\s*`)
)

// Normalize canonicalizes raw provider text: trims it, converts CRLF and bare
// CR line endings to LF, and collapses blank-line runs. Empty or
// whitespace-only input yields ErrInvalidInput.
func Normalize(text string) (string, error) {
	out := strings.TrimSpace(text)
	if out == "" {
		return "", ErrInvalidInput
	}
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	out = blankRunRE.ReplaceAllString(out, "\n")
	return out, nil
}

// matchHeader reports which section a line opens, if any. Matching is a
// case-insensitive prefix test in fixed section order.
func matchHeader(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, section := range sectionOrder {
		for _, header := range sectionHeaders[section] {
			if strings.HasPrefix(lower, header) {
				return section, true
			}
		}
	}
	return "", false
}

// cleanItem strips list markers and surrounding whitespace from an item line.
func cleanItem(line string) string {
	return strings.TrimSpace(markerRE.ReplaceAllString(line, ""))
}

// lineScan is the fold accumulator for section classification: the section
// currently open (empty until the first header) and the items collected per
// section.
type lineScan struct {
	current Section
	buckets map[Section][]string
}

func newLineScan() lineScan {
	return lineScan{buckets: make(map[Section][]string)}
}

// scanLine folds one line into the accumulator. Header lines switch the open
// section and contribute no item; lines before any header, blank lines, and
// lines reduced to nothing by marker stripping are dropped.
func scanLine(acc lineScan, line string) lineScan {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return acc
	}
	if section, ok := matchHeader(trimmed); ok {
		acc.current = section
		return acc
	}
	if acc.current == "" {
		return acc
	}
	if item := cleanItem(trimmed); item != "" {
		acc.buckets[acc.current] = append(acc.buckets[acc.current], item)
	}
	return acc
}

// Parse turns one provider's raw text into a Recommendation. The returned
// record is always usable: sections that yielded no items carry their
// placeholder entry, and any failure (empty input, no recognized section)
// yields the fixed error record alongside the causing error.
func Parse(text string) (Recommendation, error) {
	normalized, err := Normalize(text)
	if err != nil {
		return errorRecord(), err
	}

	acc := newLineScan()
	for _, line := range strings.Split(normalized, "\n") {
		acc = scanLine(acc, line)
	}

	var rec Recommendation
	empty := 0
	for _, section := range sectionOrder {
		items := acc.buckets[section]
		if len(items) == 0 {
			empty++
			items = []string{emptyPlaceholder(section)}
		}
		rec.setSection(section, items)
	}
	if empty == len(sectionOrder) {
		return errorRecord(), ErrNoDataParsed
	}
	return rec, nil
}
