// Package shared provides common utility functions used across multiple
// packages in the relman codebase.
package shared

import "strings"

// SplitAny splits value on every rune contained in separators. Adjacent
// separators yield empty fields, matching strings.Split.
func SplitAny(value string, separators string) []string {
	var fields []string
	start := 0
	for i, r := range value {
		if strings.ContainsRune(separators, r) {
			fields = append(fields, value[start:i])
			start = i + len(string(r))
		}
	}
	return append(fields, value[start:])
}

// TrimTrailingEmpty drops empty fields from the end of fields.
func TrimTrailingEmpty(fields []string) []string {
	end := len(fields)
	for end > 0 && fields[end-1] == "" {
		end--
	}
	return fields[:end]
}
