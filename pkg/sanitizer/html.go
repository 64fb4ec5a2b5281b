package sanitizer

import "strings"

// htmlReplacer escapes the five HTML-reserved characters in a single pass,
// so ampersands introduced by earlier entity replacements are never
// re-escaped.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes &, <, >, " and ' for safe embedding into HTML.
// Empty input yields an empty string.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlReplacer.Replace(s)
}

// NewlineToBreaks replaces every newline character with an HTML <br/> tag.
// It performs no escaping; callers must escape first.
func NewlineToBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br/>")
}
