package util

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteGettextJSON(t *testing.T) {
	f, err := ReadPoFile(writeTestPo(t, testPoContent))
	if err != nil {
		t.Fatalf("ReadPoFile failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteGettextJSON(NewGettextJSON(f, f.Entries(), f.Obsolete()), &buf); err != nil {
		t.Fatalf("WriteGettextJSON failed: %v", err)
	}

	var doc GettextJSON
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.HeaderComment != "# Test catalog.\n" {
		t.Errorf("header_comment: got %q", doc.HeaderComment)
	}
	if !strings.HasPrefix(doc.HeaderMeta, "Language: ja\n") {
		t.Errorf("header_meta: got %q", doc.HeaderMeta)
	}
	if len(doc.Entries) != 6 {
		t.Fatalf("entries: want 6, got %d", len(doc.Entries))
	}
	if doc.Entries[0].MsgStr != "ページ設定..." {
		t.Errorf("entries[0].msgstr: got %q", doc.Entries[0].MsgStr)
	}
	if !doc.Entries[3].Fuzzy {
		t.Errorf("entries[3] should be fuzzy")
	}
	if doc.Entries[4].MsgID != "Line one\nLine two" {
		t.Errorf("entries[4].msgid: got %q", doc.Entries[4].MsgID)
	}
	if !doc.Entries[5].Obsolete || len(doc.Entries[5].Comments) != 2 {
		t.Errorf("entries[5] should be obsolete with 2 comments, got %+v", doc.Entries[5])
	}
}

func TestReadGettextJSONRoundTrip(t *testing.T) {
	f, err := ReadPoFile(writeTestPo(t, testPoContent))
	if err != nil {
		t.Fatalf("ReadPoFile failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteGettextJSON(NewGettextJSON(f, f.Entries(), f.Obsolete()), &buf); err != nil {
		t.Fatalf("WriteGettextJSON failed: %v", err)
	}

	g, err := ReadGettextJSON(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadGettextJSON failed: %v", err)
	}
	if g.Len() != f.Len() {
		t.Fatalf("entries: want %d, got %d", f.Len(), g.Len())
	}
	for _, e := range f.Entries() {
		want := DecodeValue(e.MsgStr())
		got := LookupMsgIDs(g, []string{DecodeValue(e.MsgID())})[0]
		if !got.Found || got.MsgStr != want {
			t.Errorf("msgid %q: want %q, got %+v", e.MsgID(), want, got)
		}
	}
	if len(g.Obsolete()) != 1 {
		t.Errorf("obsolete: want 1, got %d", len(g.Obsolete()))
	}
	if lang, _ := g.HeaderField("Language"); lang != "ja" {
		t.Errorf("Language: want ja, got %q", lang)
	}
	if e := g.Entry("Added %s"); e == nil || !e.IsFuzzy() {
		t.Errorf("fuzzy flag lost")
	}
}

func TestReadGettextJSONTolerant(t *testing.T) {
	// trailing text after the object is rejected by encoding/json
	data := []byte(`{
  "header_meta": "Language: de\n",
  "entries": [
    {"msgid": "Hello", "msgstr": "Hallo", "comments": ["#. greeting"]},
    {"msgid": "Bye", "msgstr": "", "fuzzy": true}
  ]
}
-- end of output --`)
	f, err := ReadGettextJSON(data)
	if err != nil {
		t.Fatalf("ReadGettextJSON failed: %v", err)
	}
	if msgstr, ok := f.Lookup("Hello"); !ok || msgstr != "Hallo" {
		t.Errorf("Hello: want Hallo, got %q (%v)", msgstr, ok)
	}
	if e := f.Entry("Bye"); e == nil || !e.IsFuzzy() {
		t.Errorf("Bye should be a fuzzy entry")
	}
	if lang, _ := f.HeaderField("Language"); lang != "de" {
		t.Errorf("Language: want de, got %q", lang)
	}
}

func TestReadGettextJSONInvalid(t *testing.T) {
	if _, err := ReadGettextJSON([]byte(`{"header_meta": `)); err == nil {
		t.Errorf("expected error for truncated JSON")
	}
}

func TestReadPoFileDetectsJSON(t *testing.T) {
	name := writeTestPo(t, "  \n{\"entries\": [{\"msgid\": \"a\", \"msgstr\": \"b\"}]}\n")
	f, err := ReadPoFile(name)
	if err != nil {
		t.Fatalf("ReadPoFile failed: %v", err)
	}
	if msgstr, _ := f.Lookup("a"); msgstr != "b" {
		t.Errorf("want b, got %q", msgstr)
	}
}
