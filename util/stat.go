package util

import (
	"fmt"
	"strings"

	"github.com/git-l10n/pocat/po"
)

// PoReportStats holds statistics for a PO file.
type PoReportStats struct {
	Translated   int // Entries with non-empty translation, not fuzzy, not same as msgid
	Untranslated int // Entries with empty msgstr
	Same         int // Entries where msgstr equals msgid (suspect untranslated)
	Fuzzy        int // Entries with fuzzy flag
	Obsolete     int // Obsolete entries (#~ format)
}

// CountPoReportStats returns entry statistics of f.
func CountPoReportStats(f *po.File) *PoReportStats {
	stats := &PoReportStats{}

	for _, e := range f.Entries() {
		if e.IsFuzzy() {
			stats.Fuzzy++
			continue
		}
		if e.MsgStr() == "" {
			stats.Untranslated++
			continue
		}
		if e.MsgStr() == e.MsgID() {
			stats.Same++
			continue
		}
		stats.Translated++
	}

	for _, e := range f.Obsolete() {
		for _, c := range e.Comments() {
			if strings.HasPrefix(c, "#~ msgid ") {
				stats.Obsolete++
				break
			}
		}
	}

	return stats
}

// CountPoFileStats parses poFile and returns its statistics.
func CountPoFileStats(poFile string) (*PoReportStats, error) {
	f, err := ReadPoFile(poFile)
	if err != nil {
		return nil, err
	}
	return CountPoReportStats(f), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatMsgfmtStatistics formats stats to match msgfmt --statistics output.
// For compatibility, "same" (msgstr == msgid) is counted as translated.
func FormatMsgfmtStatistics(stats *PoReportStats) string {
	translated := stats.Translated + stats.Same
	var parts []string
	if translated > 0 {
		parts = append(parts, plural(translated, "translated message", "translated messages"))
	}
	if stats.Fuzzy > 0 {
		parts = append(parts, plural(stats.Fuzzy, "fuzzy translation", "fuzzy translations"))
	}
	if stats.Untranslated > 0 {
		parts = append(parts, plural(stats.Untranslated, "untranslated message", "untranslated messages"))
	}
	if len(parts) == 0 {
		return "0 translated messages.\n"
	}
	return strings.Join(parts, ", ") + ".\n"
}

// FormatStatLine formats stats in one line, similar to msgfmt --statistics,
// but also includes same and obsolete. Only non-zero categories are shown.
func FormatStatLine(stats *PoReportStats) string {
	var parts []string
	if stats.Translated > 0 {
		parts = append(parts, plural(stats.Translated, "translated message", "translated messages"))
	}
	if stats.Fuzzy > 0 {
		parts = append(parts, plural(stats.Fuzzy, "fuzzy translation", "fuzzy translations"))
	}
	if stats.Untranslated > 0 {
		parts = append(parts, plural(stats.Untranslated, "untranslated message", "untranslated messages"))
	}
	if stats.Same > 0 {
		parts = append(parts, plural(stats.Same, "same message", "same messages"))
	}
	if stats.Obsolete > 0 {
		parts = append(parts, plural(stats.Obsolete, "obsolete entry", "obsolete entries"))
	}
	if len(parts) == 0 {
		return "0 translated messages.\n"
	}
	return strings.Join(parts, ", ") + ".\n"
}
