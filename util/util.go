package util

import (
	"strings"
)

// StringListContains returns true if the list of strings contains item.
func StringListContains(list []string, item string) bool {
	for i := range list {
		if list[i] == item {
			return true
		}
	}
	return false
}

// LastPathSegment returns the final path segment of a URI or path.
// Controlled-vocabulary URIs carry their meaningful token there:
// ".../event-type/digitization" yields "digitization".
func LastPathSegment(uri string) string {
	trimmed := strings.TrimRight(uri, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}

// SplitAndTrim splits a comma-separated config value into trimmed,
// non-empty entries.
func SplitAndTrim(commaList string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(commaList, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ListContainsFold returns true if the list contains item, comparing
// case-insensitively after trimming whitespace on both sides.
func ListContainsFold(list []string, item string) bool {
	item = strings.TrimSpace(item)
	for i := range list {
		if strings.EqualFold(strings.TrimSpace(list[i]), item) {
			return true
		}
	}
	return false
}
