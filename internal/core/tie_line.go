package core

import (
	"slices"
	"strings"

	"relman/internal/shared"
)

// TieFieldSeparators are the characters that split fields of a delimited
// tie file line.
const TieFieldSeparators = "\"';,:"

// ParseTieLine splits one delimited tie file line into trimmed group,
// artifact and version. Trailing empty fields are ignored; anything else
// that is not exactly three non-empty fields is rejected.
func ParseTieLine(line string) (groupID string, artifactID string, version string, ok bool) {
	fields := shared.TrimTrailingEmpty(shared.SplitAny(strings.TrimSpace(line), TieFieldSeparators))
	if len(fields) != 3 {
		return "", "", "", false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if slices.Contains(fields, "") {
		return "", "", "", false
	}
	return fields[0], fields[1], fields[2], true
}
