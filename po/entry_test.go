package po

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryIsFuzzy(t *testing.T) {
	for _, tc := range []struct {
		comments []string
		want     bool
	}{
		{[]string{"#, fuzzy"}, true},
		{[]string{"#, fuzzy, c-format"}, true},
		{[]string{"#: src/a.c:1", "#, c-format, fuzzy"}, true},
		{[]string{"#, c-format"}, false},
		{[]string{"# fuzzy"}, false},
		{[]string{"#. fuzzy"}, false},
		{[]string{"#, fuzzyish"}, false},
		{[]string{"#,fuzzy"}, true},
		{nil, false},
	} {
		e := NewEntry("a", "b", tc.comments...)
		assert.Equal(t, tc.want, e.IsFuzzy(), "%q", tc.comments)
	}
}

func TestEntrySetFuzzy(t *testing.T) {
	e := NewEntry("a", "b", "#: src/a.c:1", "#, c-format")
	e.SetFuzzy(true)
	assert.Equal(t, []string{"#: src/a.c:1", "#, fuzzy, c-format"}, e.Comments())
	assert.Equal(t, []string{"fuzzy", "c-format"}, e.Flags())

	e.SetFuzzy(false)
	assert.Equal(t, []string{"#: src/a.c:1", "#, c-format"}, e.Comments())

	e = NewEntry("a", "b")
	e.SetFuzzy(true)
	assert.Equal(t, []string{"#, fuzzy"}, e.Comments())
	e.SetFuzzy(false)
	assert.Empty(t, e.Comments())
}

func TestEntrySetFuzzyOddFlagLines(t *testing.T) {
	e := NewEntry("a", "b", "#,")
	e.SetFuzzy(true)
	assert.Equal(t, []string{"#, fuzzy"}, e.Comments())
	assert.True(t, e.IsFuzzy())

	e = NewEntry("a", "b", "#, fuzzyish")
	assert.False(t, e.IsFuzzy())
	e.SetFuzzy(true)
	assert.Equal(t, []string{"#, fuzzy, fuzzyish"}, e.Comments())
	e.SetFuzzy(false)
	assert.False(t, e.IsFuzzy())
	assert.Equal(t, []string{"#, fuzzyish"}, e.Comments())
}

func TestEntryPredicates(t *testing.T) {
	header := &Entry{msgid: Some(""), msgstr: Some("\nLanguage: ja\\n")}
	assert.True(t, header.IsHeader())
	assert.False(t, header.IsTranslated())

	untranslated := NewEntry("Hello", "")
	assert.False(t, untranslated.IsHeader())
	assert.False(t, untranslated.IsTranslated())

	translated := NewEntry("Hello", "Hallo")
	assert.True(t, translated.IsTranslated())
	assert.False(t, translated.IsObsolete())

	obsolete := &Entry{comments: []string{`#~ msgid "x"`}}
	assert.True(t, obsolete.IsObsolete())
	assert.False(t, obsolete.IsEmpty())
	assert.True(t, (&Entry{}).IsEmpty())
}

func TestEntryString(t *testing.T) {
	for _, tc := range []struct {
		name  string
		entry *Entry
		want  string
	}{
		{
			name:  "simple",
			entry: NewEntry("Hello", "Hallo", "#: a.c:1"),
			want:  "#: a.c:1\nmsgid \"Hello\"\nmsgstr \"Hallo\"\n",
		},
		{
			name:  "untranslated",
			entry: NewEntry("Hello", ""),
			want:  "msgid \"Hello\"\nmsgstr \"\"\n",
		},
		{
			name:  "multi-line",
			entry: NewEntry("\nOne\\n\nTwo", "\nEins\\n\nZwei"),
			want:  "msgid \"\"\n\"One\\n\"\n\"Two\"\nmsgstr \"\"\n\"Eins\\n\"\n\"Zwei\"\n",
		},
		{
			name:  "header",
			entry: &Entry{msgid: Some(""), msgstr: Some("\nLanguage: ja\\n")},
			want:  "msgid \"\"\nmsgstr \"\"\n\"Language: ja\\n\"\n",
		},
		{
			name:  "obsolete drops msgstr",
			entry: &Entry{msgstr: Some("stray"), comments: []string{`#~ msgid "x"`}},
			want:  "#~ msgid \"x\"\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry.String())
		})
	}
}

func TestEntryListenerOrder(t *testing.T) {
	var calls []string
	e := NewEntry("a", "b")
	e.AddListener(ChangeListenerFunc(func(_ *Entry, msgid, msgstr Text) {
		calls = append(calls, "first:"+msgid.Value+"/"+msgstr.Value)
	}))
	e.AddListener(ChangeListenerFunc(func(_ *Entry, msgid, msgstr Text) {
		calls = append(calls, "second:"+msgid.Value+"/"+msgstr.Value)
	}))

	e.SetMsgID("c")
	e.SetMsgStr("d")

	assert.Equal(t, []string{
		"first:c/b", "second:c/b",
		"first:c/d", "second:c/d",
	}, calls)
}

func TestEntryRemoveListener(t *testing.T) {
	f := New()
	e := NewEntry("a", "b")
	e.AddListener(f)
	e.AddListener(f)
	e.RemoveListener(f)
	assert.Empty(t, e.listeners)
}
