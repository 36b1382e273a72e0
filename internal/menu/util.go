package menu

import "strings"

// SplitPath breaks a slash-separated menu path such as
// "Settings/Audio Settings" into trimmed, non-empty segments.
func SplitPath(path string) []string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '>'
	})
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}
