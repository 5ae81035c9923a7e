package util

import (
	"fmt"
	"os"

	"github.com/git-l10n/pocat/po"
	"github.com/gorilla/i18n/gettext"
	log "github.com/sirupsen/logrus"
)

// ReadMoCatalog loads a compiled MO file.
func ReadMoCatalog(moFile string) (*gettext.Catalog, error) {
	fp, err := os.Open(moFile)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	catalog := gettext.NewCatalog()
	if err := catalog.ReadMo(fp); err != nil {
		return nil, fmt.Errorf("fail to read mo file %s: %w", moFile, err)
	}
	return catalog, nil
}

func moMessages(catalog *gettext.Catalog) (map[string]string, error) {
	msgs := make(map[string]string)
	iter := catalog.Iter()
	for i, size := 0, iter.Size(); i < size; i++ {
		msg, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if msg.Ctxt != nil || len(msg.Id) == 0 {
			continue
		}
		msgs[string(msg.Id)] = string(msg.Str)
	}
	return msgs, nil
}

// CheckMo compares the translated, non-fuzzy entries of f with catalog and
// returns one message per mismatch. Fuzzy and untranslated entries are not
// compiled by msgfmt and must be absent from the catalog.
func CheckMo(f *po.File, catalog *gettext.Catalog) ([]string, error) {
	var errs []string

	msgs, err := moMessages(catalog)
	if err != nil {
		return nil, err
	}

	if lang, ok := f.HeaderField("Language"); ok && catalog.Header != nil {
		if moLang := catalog.Header.Get("Language"); moLang != lang {
			errs = append(errs, fmt.Sprintf("language mismatch: po has %q, mo has %q", lang, moLang))
		}
	}

	for _, e := range f.Entries() {
		msgid := DecodeValue(e.MsgID())
		moStr, ok := msgs[msgid]
		if !e.IsTranslated() || e.IsFuzzy() {
			if ok {
				errs = append(errs, fmt.Sprintf("msgid %q: not translated in po, but found in mo", msgid))
			}
			continue
		}
		if !ok {
			errs = append(errs, fmt.Sprintf("msgid %q: missing in mo", msgid))
			continue
		}
		if msgstr := DecodeValue(e.MsgStr()); moStr != msgstr {
			errs = append(errs, fmt.Sprintf("msgid %q: po has %q, mo has %q", msgid, msgstr, moStr))
		}
	}
	log.Debugf("checked %d entries against %d mo messages", f.Len(), len(msgs))
	return errs, nil
}

// CheckMoFile runs CheckMo on the files poFile and moFile.
func CheckMoFile(poFile, moFile string) ([]string, error) {
	f, err := ReadPoFile(poFile)
	if err != nil {
		return nil, err
	}
	catalog, err := ReadMoCatalog(moFile)
	if err != nil {
		return nil, err
	}
	return CheckMo(f, catalog)
}
