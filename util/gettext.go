// Package util implements the pocat commands on top of package po.
package util

import (
	"strings"
)

// DecodeValue turns a msgid or msgstr as stored by package po (escaped, with
// "\n" joining the quoted source lines) into the text it stands for.
func DecodeValue(value string) string {
	return poUnescape(strings.ReplaceAll(value, "\n", ""))
}

// EncodeValue is the inverse of DecodeValue. Text spanning several lines is
// laid out the way msgmerge does: an empty first line followed by one quoted
// line per source line.
func EncodeValue(text string) string {
	body := strings.TrimSuffix(text, "\n")
	if !strings.Contains(body, "\n") {
		return poEscape(text)
	}
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(poEscape(line))
	}
	return b.String()
}

// poUnescape decodes PO escape sequences in s into real characters.
// PO uses \n (newline), \t (tab), \r (carriage return), \" (quote), \\ (backslash).
func poUnescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case '"':
				b.WriteByte('"')
				i++
			case '\\':
				b.WriteByte('\\')
				i++
			default:
				b.WriteByte(s[i])
			}
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

var poEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// poEscape is the inverse of poUnescape.
func poEscape(s string) string {
	return poEscaper.Replace(s)
}
