package util

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestPo(t *testing.T, content string) string {
	t.Helper()
	poFile := filepath.Join(t.TempDir(), "test.po")
	if err := os.WriteFile(poFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return poFile
}

const testPoContent = `# Test catalog.
msgid ""
msgstr ""
"Language: ja\n"
"Content-Type: text/plain; charset=UTF-8\n"

#: src/print.c:10
msgid "Page Setup..."
msgstr "ページ設定..."

msgid "World"
msgstr ""

msgid "File"
msgstr "File"

#, fuzzy, c-format
msgid "Added %s"
msgstr "%s を追加"

msgid ""
"Line one\n"
"Line two"
msgstr ""
"一行目\n"
"二行目"

#~ msgid "Old"
#~ msgstr "古い"
`

func TestAnswerIsTrue(t *testing.T) {
	for _, answer := range []string{"y", "Yes", " true ", "on", "1"} {
		if !AnswerIsTrue(answer) {
			t.Errorf("AnswerIsTrue(%q): want true, got false", answer)
		}
	}
	for _, answer := range []string{"", "n", "no", "0", "maybe"} {
		if AnswerIsTrue(answer) {
			t.Errorf("AnswerIsTrue(%q): want false, got true", answer)
		}
	}
}

func TestExistAndIsFile(t *testing.T) {
	dir := t.TempDir()
	poFile := writeTestPo(t, testPoContent)

	if !Exist(dir) || IsFile(dir) {
		t.Errorf("directory %s: want exist and not a file", dir)
	}
	if !Exist(poFile) || !IsFile(poFile) {
		t.Errorf("file %s: want exist and a file", poFile)
	}
	if Exist(filepath.Join(dir, "missing")) {
		t.Errorf("missing file reported as exist")
	}
}
