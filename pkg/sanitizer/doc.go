// Package sanitizer provides text transforms for safely embedding
// user-supplied input into HTML email bodies.
//
// All functions are pure string transforms with no side effects.
// Escape first, then convert line breaks, so inserted markup is not
// corrupted by escaping:
//
//	body := sanitizer.NewlineToBreaks(sanitizer.EscapeHTML(msg))
package sanitizer
