package util

import (
	"github.com/git-l10n/pocat/po"
)

// EntryStateFilter specifies which entry states to include.
// Used by cat and export to filter entries by translation state.
type EntryStateFilter struct {
	// Translated: msgstr not empty, not fuzzy
	Translated bool
	// Untranslated: msgstr empty
	Untranslated bool
	// Fuzzy: marked fuzzy in comments
	Fuzzy bool
	// NoObsolete: exclude obsolete entries
	NoObsolete bool
	// OnlySame: only entries where msgstr == msgid (mutually exclusive with others)
	OnlySame bool
	// OnlyObsolete: only obsolete entries (mutually exclusive with others)
	OnlyObsolete bool
}

// HasStateFilter returns true if any of --translated, --untranslated, --fuzzy was set.
func (f EntryStateFilter) HasStateFilter() bool {
	return f.Translated || f.Untranslated || f.Fuzzy
}

// IncludeObsolete returns true if obsolete entries should be included.
func (f EntryStateFilter) IncludeObsolete() bool {
	if f.OnlyObsolete {
		return true
	}
	return !f.NoObsolete && !f.OnlySame && !f.HasStateFilter()
}

// MatchEntryState returns true if the entry matches the filter.
func MatchEntryState(e *po.Entry, filter EntryStateFilter) bool {
	if e.IsObsolete() {
		return filter.IncludeObsolete()
	}
	if filter.OnlyObsolete {
		return false
	}
	if filter.OnlySame {
		return e.MsgStr() == e.MsgID()
	}

	// State filter: if any of translated/untranslated/fuzzy set, use OR of those
	if filter.HasStateFilter() {
		matched := false
		if filter.Translated && e.MsgStr() != "" && !e.IsFuzzy() {
			matched = true
		}
		if filter.Untranslated && e.MsgStr() == "" {
			matched = true
		}
		if filter.Fuzzy && e.IsFuzzy() {
			matched = true
		}
		return matched
	}

	return true
}

// ApplyEntryFilter drops the entries of f that do not match filter and
// returns the obsolete entries that do.
func ApplyEntryFilter(f *po.File, filter EntryStateFilter) []*po.Entry {
	f.RemoveFunc(func(e *po.Entry) bool {
		return !MatchEntryState(e, filter)
	})
	var obsolete []*po.Entry
	for _, e := range f.Obsolete() {
		if MatchEntryState(e, filter) {
			obsolete = append(obsolete, e)
		}
	}
	return obsolete
}

// UnsetFuzzy removes the fuzzy marker from all entries and returns the
// number of entries changed.
func UnsetFuzzy(f *po.File) int {
	n := 0
	for _, e := range f.Entries() {
		if e.IsFuzzy() {
			e.SetFuzzy(false)
			n++
		}
	}
	return n
}

// ClearFuzzy removes the fuzzy marker and the translation of all fuzzy
// entries and returns the number of entries changed.
func ClearFuzzy(f *po.File) int {
	n := 0
	for _, e := range f.Entries() {
		if e.IsFuzzy() {
			e.SetFuzzy(false)
			e.SetMsgStr("")
			n++
		}
	}
	return n
}
