package logutil

import (
	"fmt"
	"strings"
)

// TruncateForLog returns a single-line truncated preview for unstructured values.
func TruncateForLog(value string, maxChars int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	normalized := strings.ReplaceAll(trimmed, "\n", "\\n")
	if maxChars <= 0 || len(normalized) <= maxChars {
		return normalized
	}
	return normalized[:maxChars] + "... [truncated]"
}

// FormatConsoleForLog returns one-line "type: text" output for a console message.
func FormatConsoleForLog(msgType, text string, maxChars int) string {
	preview := TruncateForLog(text, maxChars)
	if preview == "" {
		preview = "<empty>"
	}
	return fmt.Sprintf("%s: %s", msgType, preview)
}
