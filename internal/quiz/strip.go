package quiz

import (
	"regexp"
	"strings"
)

var (
	// Block comments first, non-greedy so adjacent comments don't merge;
	// (?s) lets them span lines.
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`//[^\n]*`)
)

// StripComments removes C++ block and line comments from a code snippet
// and drops lines left blank by the removal. It is applied to every
// generated snippet as a hint-leak guard and is idempotent.
func StripComments(code string) string {
	stripped := blockCommentPattern.ReplaceAllString(code, "")
	stripped = lineCommentPattern.ReplaceAllString(stripped, "")

	lines := strings.Split(stripped, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
