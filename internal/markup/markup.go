// Package markup converts text to and from Telegram MarkdownV2.
package markup

import "strings"

const reserved = "_*[]()~`>#+-=|{}.!\\"

// Escape prefixes every MarkdownV2 reserved character with a backslash.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		if strings.ContainsRune(reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Bold wraps already escaped text in bold markers.
func Bold(escaped string) string {
	return "*" + escaped + "*"
}

// Strip turns a MarkdownV2 string into plain text: escaped characters are
// kept literally and unescaped formatting markers are dropped.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '*' || r == '_' || r == '~' || r == '`' || r == '|':
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

// Truncate cuts s to at most max runes, ending with "..." when shortened.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
