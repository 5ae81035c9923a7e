package util

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCountPoReportStats(t *testing.T) {
	poContent := `# SOME DESCRIPTIVE TITLE.
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

# Translated
msgid "Hello"
msgstr "你好"

# Untranslated
msgid "World"
msgstr ""

# Same as msgid (suspect)
msgid "File"
msgstr "File"

# Fuzzy
#, fuzzy
msgid "Fuzzy entry"
msgstr "模糊"

# Another translated
msgid "Good"
msgstr "好"

#~ msgid "Obsolete entry"
#~ msgstr ""
`

	stats, err := CountPoFileStats(writeTestPo(t, poContent))
	if err != nil {
		t.Fatalf("CountPoFileStats failed: %v", err)
	}

	if stats.Translated != 2 {
		t.Errorf("translated: want 2, got %d", stats.Translated)
	}
	if stats.Untranslated != 1 {
		t.Errorf("untranslated: want 1, got %d", stats.Untranslated)
	}
	if stats.Same != 1 {
		t.Errorf("same: want 1, got %d", stats.Same)
	}
	if stats.Fuzzy != 1 {
		t.Errorf("fuzzy: want 1, got %d", stats.Fuzzy)
	}
	if stats.Obsolete != 1 {
		t.Errorf("obsolete: want 1, got %d", stats.Obsolete)
	}
}

// TestReportMatchesMsgfmtStatistics verifies that report output matches
// msgfmt --statistics when there are no "same" (msgstr == msgid) entries.
func TestReportMatchesMsgfmtStatistics(t *testing.T) {
	if _, err := exec.LookPath("msgfmt"); err != nil {
		t.Skip("msgfmt not found, skipping")
	}

	// PO file without "same" entries: translated, untranslated, fuzzy only
	poContent := `# Test file for msgfmt compatibility
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Hello"
msgstr "你好"

msgid "World"
msgstr ""

#, fuzzy
msgid "Fuzzy"
msgstr "模糊"
`

	poFile := writeTestPo(t, poContent)
	tmpDir := filepath.Dir(poFile)

	// Get msgfmt output
	cmd := exec.Command("msgfmt", "--statistics", "-o", os.DevNull, poFile)
	cmd.Dir = tmpDir
	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.Fatalf("StderrPipe: %v", err)
	}
	if err := cmd.Start(); err != nil {
		t.Fatalf("msgfmt start: %v", err)
	}
	var sb strings.Builder
	buf := make([]byte, 256)
	for {
		n, err := stderr.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	_ = cmd.Wait()
	msgfmtOut := sb.String()

	// Get our report output
	stats, err := CountPoFileStats(poFile)
	if err != nil {
		t.Fatalf("CountPoFileStats: %v", err)
	}
	ourOut := FormatMsgfmtStatistics(stats)

	if ourOut != msgfmtOut {
		t.Errorf("output mismatch:\nmsgfmt: %q\nours:   %q", msgfmtOut, ourOut)
	}
}

func TestFormatMsgfmtStatistics(t *testing.T) {
	tests := []struct {
		name     string
		stats    *PoReportStats
		expected string
	}{
		{"all zeros", &PoReportStats{}, "0 translated messages.\n"},
		{"one translated", &PoReportStats{Translated: 1}, "1 translated message.\n"},
		{"two translated", &PoReportStats{Translated: 2}, "2 translated messages.\n"},
		{"one fuzzy", &PoReportStats{Fuzzy: 1}, "1 fuzzy translation.\n"},
		{"one untranslated", &PoReportStats{Untranslated: 1}, "1 untranslated message.\n"},
		{"same counts as translated", &PoReportStats{Same: 1}, "1 translated message.\n"},
		{"mixed", &PoReportStats{Translated: 1, Same: 1, Fuzzy: 1, Untranslated: 1},
			"2 translated messages, 1 fuzzy translation, 1 untranslated message.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMsgfmtStatistics(tt.stats)
			if got != tt.expected {
				t.Errorf("FormatMsgfmtStatistics() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatStatLine(t *testing.T) {
	tests := []struct {
		name     string
		stats    *PoReportStats
		expected string
	}{
		{"all zeros", &PoReportStats{}, "0 translated messages.\n"},
		{"same shown apart", &PoReportStats{Translated: 1, Same: 2}, "1 translated message, 2 same messages.\n"},
		{"obsolete", &PoReportStats{Obsolete: 1}, "1 obsolete entry.\n"},
		{"mixed", &PoReportStats{Translated: 2, Fuzzy: 1, Untranslated: 3, Obsolete: 2},
			"2 translated messages, 1 fuzzy translation, 3 untranslated messages, 2 obsolete entries.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatStatLine(tt.stats)
			if got != tt.expected {
				t.Errorf("FormatStatLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}
