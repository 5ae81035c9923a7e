package po

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// HeaderField returns the value of a "Name: value" line of the header
// msgstr. Field names are matched case-insensitively; a trailing literal
// "\n" escape is dropped.
func (f *File) HeaderField(name string) (string, bool) {
	for _, line := range strings.Split(f.header.MsgStr(), "\n") {
		line = strings.TrimSuffix(line, `\n`)
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(line[:idx]), name) {
			return strings.TrimSpace(line[idx+1:]), true
		}
	}
	return "", false
}

// SetHeaderField replaces the value of an existing header field, or appends
// the field as a new line of the header msgstr.
func (f *File) SetHeaderField(name, value string) {
	field := fmt.Sprintf(`%s: %s\n`, name, value)
	lines := strings.Split(f.header.MsgStr(), "\n")
	for i, line := range lines {
		idx := strings.Index(line, ":")
		if idx > 0 && strings.EqualFold(strings.TrimSpace(line[:idx]), name) {
			lines[i] = field
			f.header.SetMsgStr(strings.Join(lines, "\n"))
			return
		}
	}
	if last := len(lines) - 1; lines[last] == "" {
		lines[last] = field
	} else {
		lines = append(lines, field)
	}
	f.header.SetMsgStr(strings.Join(lines, "\n"))
}

// Language parses the "Language" header field.
func (f *File) Language() (language.Tag, error) {
	value, ok := f.HeaderField("Language")
	if !ok || value == "" {
		return language.Und, fmt.Errorf("header has no Language field")
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("bad Language header %q: %w", value, err)
	}
	return tag, nil
}
