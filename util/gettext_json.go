package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/git-l10n/pocat/po"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// GettextJSON is the top-level structure for cat --json output.
type GettextJSON struct {
	HeaderComment string         `json:"header_comment"`
	HeaderMeta    string         `json:"header_meta"`
	Entries       []GettextEntry `json:"entries"`
}

// GettextEntry represents one PO entry in the JSON format. MsgID and MsgStr
// hold the decoded text. Obsolete entries carry only their comments.
type GettextEntry struct {
	MsgID    string   `json:"msgid"`
	MsgStr   string   `json:"msgstr"`
	Comments []string `json:"comments"`
	Fuzzy    bool     `json:"fuzzy"`
	Obsolete bool     `json:"obsolete,omitempty"`
}

func newGettextEntry(e *po.Entry) GettextEntry {
	ent := GettextEntry{
		Comments: e.Comments(),
		Fuzzy:    e.IsFuzzy(),
		Obsolete: e.IsObsolete(),
	}
	if !ent.Obsolete {
		ent.MsgID = DecodeValue(e.MsgID())
		ent.MsgStr = DecodeValue(e.MsgStr())
	}
	if ent.Comments == nil {
		ent.Comments = []string{}
	}
	return ent
}

// NewGettextJSON converts the header of f, entries and obsolete into the
// JSON document.
func NewGettextJSON(f *po.File, entries, obsolete []*po.Entry) *GettextJSON {
	out := &GettextJSON{
		HeaderMeta: DecodeValue(f.Header().MsgStr()),
		Entries:    make([]GettextEntry, 0, len(entries)+len(obsolete)),
	}
	if comments := f.Header().Comments(); len(comments) > 0 {
		out.HeaderComment = strings.Join(comments, "\n") + "\n"
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, newGettextEntry(e))
	}
	for _, e := range obsolete {
		out.Entries = append(out.Entries, newGettextEntry(e))
	}
	return out
}

// WriteGettextJSON encodes doc to w without HTML escaping.
func WriteGettextJSON(doc *GettextJSON, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gettext JSON: %w", err)
	}
	return nil
}

// parseGettextJSONWithGjson reads the document field by field, which
// tolerates hand-edited files that encoding/json rejects.
func parseGettextJSONWithGjson(data []byte, err error) (*GettextJSON, error) {
	log.Warnf("fall back to gjson to read json: %v", err)
	if !gjson.ValidBytes(data) && !gjson.GetBytes(data, "entries").Exists() {
		return nil, fmt.Errorf("decode gettext JSON: %w", err)
	}
	out := &GettextJSON{
		HeaderComment: gjson.GetBytes(data, "header_comment").String(),
		HeaderMeta:    gjson.GetBytes(data, "header_meta").String(),
	}
	for _, r := range gjson.GetBytes(data, "entries").Array() {
		ent := GettextEntry{
			MsgID:    r.Get("msgid").String(),
			MsgStr:   r.Get("msgstr").String(),
			Fuzzy:    r.Get("fuzzy").Bool(),
			Obsolete: r.Get("obsolete").Bool(),
		}
		for _, c := range r.Get("comments").Array() {
			ent.Comments = append(ent.Comments, c.String())
		}
		out.Entries = append(out.Entries, ent)
	}
	return out, nil
}

// ParseGettextJSON decodes data into GettextJSON.
func ParseGettextJSON(data []byte) (*GettextJSON, error) {
	var out GettextJSON
	if err := json.Unmarshal(data, &out); err != nil {
		return parseGettextJSONWithGjson(data, err)
	}
	return &out, nil
}

// Build renders doc as PO text and parses it, so the result is indexed and
// classified exactly like a file read from disk.
func (doc *GettextJSON) Build() (*po.File, error) {
	var comments []string
	if doc.HeaderComment != "" {
		comments = strings.Split(strings.TrimSuffix(doc.HeaderComment, "\n"), "\n")
	}
	header := po.NewEntry("", EncodeValue(doc.HeaderMeta), comments...)
	if doc.HeaderMeta == "" {
		header.SetMsgStr("\n")
	}
	blocks := []*po.Entry{header}
	for _, ent := range doc.Entries {
		if ent.Obsolete {
			e := &po.Entry{}
			e.SetComments(ent.Comments)
			blocks = append(blocks, e)
			continue
		}
		e := po.NewEntry(EncodeValue(ent.MsgID), EncodeValue(ent.MsgStr), ent.Comments...)
		e.SetFuzzy(ent.Fuzzy)
		blocks = append(blocks, e)
	}
	return po.Parse(strings.NewReader(po.Format(blocks)))
}

// ReadGettextJSON decodes data and builds the po.File it describes.
func ReadGettextJSON(data []byte) (*po.File, error) {
	doc, err := ParseGettextJSON(data)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}
