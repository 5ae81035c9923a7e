// Package po reads and writes gettext PO catalogs.
//
// A PO file is a sequence of blank-line separated blocks. Parse turns every
// block into an Entry and files it into a File as the header, a translatable
// entry, or an obsolete entry. Entries can be changed in place; the File keeps
// its msgid to msgstr index up to date by listening to those changes.
package po

import (
	"strings"
)

// Text is an optional PO string. Valid is false when the block had no
// corresponding directive.
type Text struct {
	Value string
	Valid bool
}

// Some returns a valid Text holding s.
func Some(s string) Text {
	return Text{Value: s, Valid: true}
}

// ChangeListener is notified before the msgid or msgstr of an Entry changes.
// msgid and msgstr hold the values the entry is about to have.
type ChangeListener interface {
	OnChange(e *Entry, msgid, msgstr Text)
}

// ChangeListenerFunc adapts a function to ChangeListener.
type ChangeListenerFunc func(e *Entry, msgid, msgstr Text)

// OnChange calls f(e, msgid, msgstr).
func (f ChangeListenerFunc) OnChange(e *Entry, msgid, msgstr Text) {
	f(e, msgid, msgstr)
}

// Entry is one block of a PO file.
type Entry struct {
	msgid     Text
	msgstr    Text
	comments  []string
	listeners []ChangeListener
}

// NewEntry returns a translatable entry. It is not attached to any File.
func NewEntry(msgid, msgstr string, comments ...string) *Entry {
	e := &Entry{}
	e.msgid = Some(msgid)
	e.msgstr = Some(msgstr)
	e.SetComments(comments)
	return e
}

// MsgID returns the original string, or "" if absent.
func (e *Entry) MsgID() string {
	return e.msgid.Value
}

// MsgIDText returns the original string including its presence.
func (e *Entry) MsgIDText() Text {
	return e.msgid
}

// HasMsgID reports whether the block had a msgid directive.
func (e *Entry) HasMsgID() bool {
	return e.msgid.Valid
}

// MsgStr returns the translation, or "" if absent.
func (e *Entry) MsgStr() string {
	return e.msgstr.Value
}

// MsgStrText returns the translation including its presence.
func (e *Entry) MsgStrText() Text {
	return e.msgstr
}

// SetMsgID notifies listeners and then changes the original string.
func (e *Entry) SetMsgID(msgid string) {
	next := Some(msgid)
	e.notify(next, e.msgstr)
	e.msgid = next
}

// SetMsgStr notifies listeners and then changes the translation.
func (e *Entry) SetMsgStr(msgstr string) {
	next := Some(msgstr)
	e.notify(e.msgid, next)
	e.msgstr = next
}

func (e *Entry) notify(msgid, msgstr Text) {
	for _, l := range e.listeners {
		l.OnChange(e, msgid, msgstr)
	}
}

// AddListener registers l. Listeners run in registration order.
func (e *Entry) AddListener(l ChangeListener) {
	e.listeners = append(e.listeners, l)
}

// RemoveListener unregisters every registration of l. Only comparable
// listeners (such as pointers) can be removed.
func (e *Entry) RemoveListener(l ChangeListener) {
	kept := e.listeners[:0]
	for _, x := range e.listeners {
		if x != l {
			kept = append(kept, x)
		}
	}
	for i := len(kept); i < len(e.listeners); i++ {
		e.listeners[i] = nil
	}
	e.listeners = kept
}

// Comments returns a copy of the comment lines, "#" marker included.
func (e *Entry) Comments() []string {
	if len(e.comments) == 0 {
		return nil
	}
	return append([]string(nil), e.comments...)
}

// SetComments replaces the comment lines.
func (e *Entry) SetComments(comments []string) {
	if len(comments) == 0 {
		e.comments = nil
		return
	}
	e.comments = append([]string(nil), comments...)
}

// Flags returns the comma separated tokens of all "#," comment lines.
func (e *Entry) Flags() []string {
	var flags []string
	for _, c := range e.comments {
		if strings.HasPrefix(c, "#,") {
			flags = append(flags, flagTokens(c)...)
		}
	}
	return flags
}

// flagTokens splits a "#," line into its non-empty flags.
func flagTokens(line string) []string {
	var flags []string
	for _, f := range strings.Split(line[2:], ",") {
		if f = strings.TrimSpace(f); f != "" {
			flags = append(flags, f)
		}
	}
	return flags
}

// IsFuzzy reports whether a "#," comment line carries the fuzzy flag.
func (e *Entry) IsFuzzy() bool {
	for _, f := range e.Flags() {
		if f == "fuzzy" {
			return true
		}
	}
	return false
}

// SetFuzzy adds or removes the fuzzy flag. Other flags on the same line are
// kept; a flag line left without flags is dropped.
func (e *Entry) SetFuzzy(fuzzy bool) {
	if fuzzy == e.IsFuzzy() {
		return
	}
	if fuzzy {
		for i, c := range e.comments {
			if strings.HasPrefix(c, "#,") {
				flags := append([]string{"fuzzy"}, flagTokens(c)...)
				e.comments[i] = "#, " + strings.Join(flags, ", ")
				return
			}
		}
		e.comments = append(e.comments, "#, fuzzy")
		return
	}

	var comments []string
	for _, c := range e.comments {
		if !strings.HasPrefix(c, "#,") {
			comments = append(comments, c)
			continue
		}
		var flags []string
		for _, f := range flagTokens(c) {
			if f != "fuzzy" {
				flags = append(flags, f)
			}
		}
		if len(flags) > 0 {
			comments = append(comments, "#, "+strings.Join(flags, ", "))
		}
	}
	e.comments = comments
}

// IsHeader reports whether the entry has an empty msgid and a non-empty
// msgstr.
func (e *Entry) IsHeader() bool {
	return e.msgid.Valid && e.msgid.Value == "" && e.msgstr.Value != ""
}

// IsTranslated reports whether both msgid and msgstr are non-empty.
func (e *Entry) IsTranslated() bool {
	return e.msgid.Value != "" && e.msgstr.Value != ""
}

// IsObsolete reports whether the block had no msgid directive.
func (e *Entry) IsObsolete() bool {
	return !e.msgid.Valid
}

// IsEmpty reports whether the block carried nothing at all.
func (e *Entry) IsEmpty() bool {
	return !e.msgid.Valid && !e.msgstr.Valid && len(e.comments) == 0
}

// String renders the entry as PO text without a trailing blank line.
func (e *Entry) String() string {
	var b strings.Builder
	for _, c := range e.comments {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	if !e.msgid.Valid {
		return b.String()
	}
	if e.IsHeader() {
		b.WriteString("msgid \"\"\n")
	} else {
		writeDirective(&b, "msgid", e.msgid.Value)
	}
	if e.msgstr.Value == "" {
		b.WriteString("msgstr \"\"\n")
	} else {
		writeDirective(&b, "msgstr", e.msgstr.Value)
	}
	return b.String()
}

// writeDirective writes keyword followed by one quoted line per "\n"
// separated fragment of value.
func writeDirective(b *strings.Builder, keyword, value string) {
	b.WriteString(keyword)
	b.WriteByte(' ')
	for i, line := range strings.Split(value, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('"')
		b.WriteString(line)
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
