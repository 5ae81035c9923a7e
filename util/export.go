package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/git-l10n/pocat/po"
)

// Export formats.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// ExportOptions controls ExportCSV.
type ExportOptions struct {
	// CommentSeparator joins the comment lines of an entry into one cell.
	CommentSeparator string
	// NoObsolete leaves out obsolete entries.
	NoObsolete bool
}

var csvHeaderRow = []string{"comments", "msgid", "msgstr"}

func csvRow(e *po.Entry, sep string) []string {
	return []string{
		strings.Join(e.Comments(), sep),
		DecodeValue(e.MsgID()),
		DecodeValue(e.MsgStr()),
	}
}

// ExportCSV writes one row for the header, each entry and each obsolete
// entry of f. msgid and msgstr are written decoded.
func ExportCSV(f *po.File, w io.Writer, opts ExportOptions) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaderRow); err != nil {
		return err
	}
	rows := [][]string{csvRow(f.Header(), opts.CommentSeparator)}
	for _, e := range f.Entries() {
		rows = append(rows, csvRow(e, opts.CommentSeparator))
	}
	if !opts.NoObsolete {
		for _, e := range f.Obsolete() {
			rows = append(rows, csvRow(e, opts.CommentSeparator))
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Export writes f in format to w.
func Export(f *po.File, format string, w io.Writer, opts ExportOptions) error {
	switch strings.ToLower(format) {
	case "", ExportFormatCSV:
		return ExportCSV(f, w, opts)
	case ExportFormatJSON:
		var obsolete []*po.Entry
		if !opts.NoObsolete {
			obsolete = f.Obsolete()
		}
		return WriteGettextJSON(NewGettextJSON(f, f.Entries(), obsolete), w)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
