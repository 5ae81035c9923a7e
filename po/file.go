package po

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// File is a parsed PO catalog: one header, the translatable entries in file
// order, and the obsolete entries that have no msgid.
//
// The msgid to msgstr index is rebuilt on the first read after a change.
// Changes are either structural (Append, RemoveFunc, SortFunc, Clear and the
// operations built on them) or field changes on an owned entry, which the
// File observes as a ChangeListener.
//
// A File is not safe for concurrent use.
type File struct {
	header    *Entry
	entries   []*Entry
	obsolete  []*Entry
	discarded []*Entry

	index map[string]string
	dirty bool
}

// New returns a File holding only a minimal header.
func New() *File {
	f := &File{dirty: true}
	f.setHeader(newHeader())
	return f
}

func newHeader() *Entry {
	return &Entry{msgid: Some(""), msgstr: Some("\n")}
}

// Parse reads r to the end and returns the File it describes.
func Parse(r io.Reader) (*File, error) {
	f := &File{dirty: true}
	s := NewBlockScanner(r)
	for s.Scan() {
		f.add(ParseEntry(s.Block()))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("fail to read po: %w", err)
	}
	if f.header == nil {
		log.Debug("no header entry found, using a minimal one")
		f.setHeader(newHeader())
	}
	log.Debugf("parsed %d entries, %d obsolete entries", len(f.entries), len(f.obsolete))
	return f, nil
}

// ParseFile opens name, parses it and closes it.
func ParseFile(name string) (*File, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	f, err := Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func (f *File) add(e *Entry) {
	if e.IsEmpty() {
		return
	}
	switch Classify(e) {
	case KindObsolete:
		f.obsolete = append(f.obsolete, e)
	case KindHeader:
		if f.header == nil {
			f.setHeader(e)
			return
		}
		log.Warnf("duplicate header, discarded:\n%s", e)
		f.discarded = append(f.discarded, e)
	default:
		f.Append(e)
	}
}

func (f *File) setHeader(e *Entry) {
	e.AddListener(f)
	f.header = e
	f.dirty = true
}

// OnChange implements ChangeListener. It marks the index stale.
func (f *File) OnChange(*Entry, Text, Text) {
	f.dirty = true
}

// Header returns the header entry.
func (f *File) Header() *Entry {
	return f.header
}

// Len returns the number of translatable entries.
func (f *File) Len() int {
	return len(f.entries)
}

// At returns the i-th translatable entry.
func (f *File) At(i int) *Entry {
	return f.entries[i]
}

// Entries returns the translatable entries in file order. The slice is a
// copy; the entries are not.
func (f *File) Entries() []*Entry {
	return append([]*Entry(nil), f.entries...)
}

// Obsolete returns the entries without a msgid.
func (f *File) Obsolete() []*Entry {
	return append([]*Entry(nil), f.obsolete...)
}

// Discarded returns the blocks dropped while parsing, such as a second
// header.
func (f *File) Discarded() []*Entry {
	return append([]*Entry(nil), f.discarded...)
}

// Append attaches e to f and adds it after the last entry. An entry with an
// empty msgid is not attached; it goes to Discarded.
func (f *File) Append(e *Entry) {
	if e.MsgID() == "" {
		log.Warnf("entry with empty msgid, discarded:\n%s", e)
		f.discarded = append(f.discarded, e)
		return
	}
	e.AddListener(f)
	f.entries = append(f.entries, e)
	f.dirty = true
}

// RemoveFunc removes every entry for which del returns true and returns the
// number of removed entries.
func (f *File) RemoveFunc(del func(*Entry) bool) int {
	var kept []*Entry
	removed := 0
	for _, e := range f.entries {
		if del(e) {
			e.RemoveListener(f)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed > 0 {
		f.entries = kept
		f.dirty = true
	}
	return removed
}

// SortFunc reorders the entries with a stable sort.
func (f *File) SortFunc(less func(a, b *Entry) bool) {
	sort.SliceStable(f.entries, func(i, j int) bool {
		return less(f.entries[i], f.entries[j])
	})
	f.dirty = true
}

// Clear removes all translatable entries.
func (f *File) Clear() {
	for _, e := range f.entries {
		e.RemoveListener(f)
	}
	f.entries = nil
	f.dirty = true
}

// NewEntry appends a new entry. It is visible to Lookup and Entry at once.
// An empty msgid names the header: its msgstr and, if given, its comments
// are replaced and the header is returned.
func (f *File) NewEntry(msgid, msgstr string, comments ...string) *Entry {
	if msgid == "" {
		if len(comments) > 0 {
			f.header.SetComments(comments)
		}
		f.header.SetMsgStr(msgstr)
		return f.header
	}
	e := &Entry{}
	e.AddListener(f)
	e.SetComments(comments)
	e.SetMsgID(msgid)
	e.SetMsgStr(msgstr)
	f.entries = append(f.entries, e)
	f.dirty = true
	return e
}

// Entry returns the first entry whose msgid is msgid, or nil.
func (f *File) Entry(msgid string) *Entry {
	for _, e := range f.entries {
		if e.MsgID() == msgid {
			return e
		}
	}
	return nil
}

// Index returns the msgid to msgstr mapping of the header and all entries.
// When a msgid occurs twice the later entry wins. The empty msgid always maps
// to the header, even if an entry was renamed to "". The map is shared with
// later calls until f changes and must not be modified.
func (f *File) Index() map[string]string {
	if f.dirty || f.index == nil {
		f.rebuildIndex()
	}
	return f.index
}

func (f *File) rebuildIndex() {
	if f.index == nil {
		f.index = make(map[string]string, len(f.entries)+1)
	} else {
		for k := range f.index {
			delete(f.index, k)
		}
	}
	for _, e := range f.entries {
		f.index[e.MsgID()] = e.MsgStr()
	}
	f.index[f.header.MsgID()] = f.header.MsgStr()
	f.dirty = false
}

// Lookup returns the translation of msgid.
func (f *File) Lookup(msgid string) (string, bool) {
	msgstr, ok := f.Index()[msgid]
	return msgstr, ok
}

// MsgIDs returns the msgids of the entries in file order.
func (f *File) MsgIDs() []string {
	ids := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		ids = append(ids, e.MsgID())
	}
	return ids
}

// MsgStrs returns the translations of the entries in file order.
func (f *File) MsgStrs() []string {
	strs := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		strs = append(strs, e.MsgStr())
	}
	return strs
}

// FilterByMsgIDs keeps only the entries whose msgid is in keep. Nothing is
// changed if keep names a msgid that is not in f.
func (f *File) FilterByMsgIDs(keep []string) error {
	set, err := f.msgIDSet("filter", keep)
	if err != nil {
		return err
	}
	f.RemoveFunc(func(e *Entry) bool {
		_, ok := set[e.MsgID()]
		return !ok
	})
	f.dirty = true
	return nil
}

// DeleteByMsgIDs removes the entries whose msgid is in del. Nothing is
// changed if del names a msgid that is not in f.
func (f *File) DeleteByMsgIDs(del []string) error {
	set, err := f.msgIDSet("delete", del)
	if err != nil {
		return err
	}
	f.RemoveFunc(func(e *Entry) bool {
		_, ok := set[e.MsgID()]
		return ok
	})
	f.dirty = true
	return nil
}

func (f *File) msgIDSet(op string, ids []string) (map[string]struct{}, error) {
	known := make(map[string]struct{}, len(f.entries))
	for _, e := range f.entries {
		known[e.MsgID()] = struct{}{}
	}
	set := make(map[string]struct{}, len(ids))
	var unknown []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
			continue
		}
		set[id] = struct{}{}
	}
	if len(unknown) > 0 {
		return nil, &ValidationError{Op: op, Unknown: unknown}
	}
	return set, nil
}

// Serialize renders f as PO text: the header, the entries and, if
// withObsolete is set, the obsolete entries, separated by blank lines.
func (f *File) Serialize(withObsolete bool) string {
	blocks := make([]*Entry, 0, 1+len(f.entries)+len(f.obsolete))
	blocks = append(blocks, f.header)
	blocks = append(blocks, f.entries...)
	if withObsolete {
		blocks = append(blocks, f.obsolete...)
	}
	return Format(blocks)
}

// Format renders entries as PO text separated by blank lines.
func Format(entries []*Entry) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = e.String()
	}
	return strings.Join(blocks, "\n")
}

// String renders f including obsolete entries.
func (f *File) String() string {
	return f.Serialize(true)
}

// WriteTo writes f including obsolete entries to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}
