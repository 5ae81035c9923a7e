package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/git-l10n/pocat/po"
	log "github.com/sirupsen/logrus"
)

// ReadMsgIDs returns args followed by the non-empty lines of idsFile.
// Lines use PO escapes, so "a\nb" names a msgid spanning two lines.
func ReadMsgIDs(args []string, idsFile string) ([]string, error) {
	ids := append([]string(nil), args...)
	if idsFile == "" {
		return ids, nil
	}
	fp, err := os.Open(idsFile)
	if err != nil {
		return nil, fmt.Errorf("fail to open ids file: %w", err)
	}
	defer fp.Close()

	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		ids = append(ids, poUnescape(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fail to read ids file: %w", err)
	}
	return ids, nil
}

// rawMsgIDs maps texts to the msgids stored in f. Texts that match no
// entry are returned unchanged, so f reports them as unknown.
func rawMsgIDs(f *po.File, texts []string) []string {
	byText := make(map[string]string, f.Len())
	for _, id := range f.MsgIDs() {
		byText[DecodeValue(id)] = id
	}
	raw := make([]string, len(texts))
	for i, text := range texts {
		if id, ok := byText[text]; ok {
			raw[i] = id
		} else {
			raw[i] = text
		}
	}
	return raw
}

// SelectEntries keeps (keep is true) or deletes the entries of f named by
// texts. f is unchanged if any text names no entry.
func SelectEntries(f *po.File, texts []string, keep bool) error {
	before := f.Len()
	ids := rawMsgIDs(f, texts)
	var err error
	if keep {
		err = f.FilterByMsgIDs(ids)
	} else {
		err = f.DeleteByMsgIDs(ids)
	}
	if err != nil {
		return err
	}
	log.Debugf("select: %d of %d entries left", f.Len(), before)
	return nil
}

// LookupResult is the translation found for one msgid.
type LookupResult struct {
	MsgID  string
	MsgStr string
	Found  bool
}

// LookupMsgIDs looks up each text in f.
func LookupMsgIDs(f *po.File, texts []string) []LookupResult {
	results := make([]LookupResult, len(texts))
	for i, id := range rawMsgIDs(f, texts) {
		msgstr, ok := f.Lookup(id)
		results[i] = LookupResult{
			MsgID:  texts[i],
			MsgStr: DecodeValue(msgstr),
			Found:  ok,
		}
	}
	return results
}

// SetTranslation sets the translation of msgid, adding a new entry when f
// has none. Non-empty comments replace the comments of the entry. It
// returns the entry and whether it was created. An empty msgid sets the
// header.
func SetTranslation(f *po.File, msgid, msgstr string, comments []string) (*po.Entry, bool) {
	if msgid == "" {
		f.Header().SetMsgStr(EncodeValue(msgstr))
		return f.Header(), false
	}
	raw := rawMsgIDs(f, []string{msgid})[0]
	if e := f.Entry(raw); e != nil {
		if len(comments) > 0 {
			e.SetComments(comments)
		}
		e.SetMsgStr(EncodeValue(msgstr))
		return e, false
	}
	return f.NewEntry(EncodeValue(msgid), EncodeValue(msgstr), comments...), true
}
