package util

import (
	"reflect"
	"testing"
)

func filteredMsgIDs(t *testing.T, filter EntryStateFilter) ([]string, int) {
	t.Helper()
	f, err := ReadPoFile(writeTestPo(t, testPoContent))
	if err != nil {
		t.Fatalf("ReadPoFile failed: %v", err)
	}
	obsolete := ApplyEntryFilter(f, filter)
	var ids []string
	for _, id := range f.MsgIDs() {
		ids = append(ids, DecodeValue(id))
	}
	return ids, len(obsolete)
}

func TestApplyEntryFilter(t *testing.T) {
	all := []string{"Page Setup...", "World", "File", "Added %s", "Line one\nLine two"}
	tests := []struct {
		name     string
		filter   EntryStateFilter
		ids      []string
		obsolete int
	}{
		{"default", EntryStateFilter{}, all, 1},
		{"no obsolete", EntryStateFilter{NoObsolete: true}, all, 0},
		{"translated", EntryStateFilter{Translated: true},
			[]string{"Page Setup...", "File", "Line one\nLine two"}, 0},
		{"untranslated", EntryStateFilter{Untranslated: true}, []string{"World"}, 0},
		{"fuzzy or untranslated", EntryStateFilter{Fuzzy: true, Untranslated: true},
			[]string{"World", "Added %s"}, 0},
		{"only same", EntryStateFilter{OnlySame: true}, []string{"File"}, 0},
		{"only obsolete", EntryStateFilter{OnlyObsolete: true}, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, obsolete := filteredMsgIDs(t, tt.filter)
			if !reflect.DeepEqual(tt.ids, ids) {
				t.Errorf("msgids: want %q, got %q", tt.ids, ids)
			}
			if obsolete != tt.obsolete {
				t.Errorf("obsolete: want %d, got %d", tt.obsolete, obsolete)
			}
		})
	}
}

func TestUnsetAndClearFuzzy(t *testing.T) {
	f, err := ReadPoFile(writeTestPo(t, testPoContent))
	if err != nil {
		t.Fatalf("ReadPoFile failed: %v", err)
	}
	if n := UnsetFuzzy(f); n != 1 {
		t.Errorf("UnsetFuzzy: want 1, got %d", n)
	}
	e := f.Entry("Added %s")
	if e.IsFuzzy() {
		t.Errorf("entry still fuzzy after UnsetFuzzy")
	}
	if e.MsgStr() != "%s を追加" {
		t.Errorf("UnsetFuzzy changed msgstr to %q", e.MsgStr())
	}
	if !reflect.DeepEqual([]string{"#, c-format"}, e.Comments()) {
		t.Errorf("comments: got %q", e.Comments())
	}

	f, err = ReadPoFile(writeTestPo(t, testPoContent))
	if err != nil {
		t.Fatalf("ReadPoFile failed: %v", err)
	}
	if n := ClearFuzzy(f); n != 1 {
		t.Errorf("ClearFuzzy: want 1, got %d", n)
	}
	if msgstr, _ := f.Lookup("Added %s"); msgstr != "" {
		t.Errorf("ClearFuzzy: want empty msgstr, got %q", msgstr)
	}
}
