package cmd

import (
	"strings"

	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type setCommand struct {
	cmd *cobra.Command
	O   struct {
		Output   string
		Comments     []string
		Fuzzy        bool
		HeaderFields []string
	}
}

func (v *setCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "set [-o <output>] [--comment <comment>]... [--header-field <name: value>]... <po-file> [<msgid> <msgstr>]",
		Short: "Set the translation of a msgid",
		Long: `Set the translation of msgid. If the PO file has no entry for msgid, a new
entry is appended. Comments given by --comment replace those of the entry and
must be complete PO comment lines, such as "#. note" or "#: file.c:10".
An empty msgid replaces the header. --header-field sets a single header
field and may be given without msgid and msgstr.

Examples:
  pocat set -i po/zh_CN.po "Hello" "你好"
  pocat set --comment "#. greeting" -o new.po po/zh_CN.po "Hi" "嗨"
  pocat set -i --header-field "Language: zh_CN" po/zh_CN.po`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	fs.StringArrayVar(&v.O.Comments, "comment", nil, "comment line for the entry, may be repeated")
	fs.BoolVar(&v.O.Fuzzy, "fuzzy", false, "mark the entry as fuzzy")
	fs.StringArrayVar(&v.O.HeaderFields, "header-field", nil, `header field as "Name: value", may be repeated`)

	return v.cmd
}

func (v setCommand) Execute(args []string) error {
	if len(args) != 3 && (len(args) != 1 || len(v.O.HeaderFields) == 0) {
		return newUserError("set requires three arguments: <po-file> <msgid> <msgstr>")
	}
	fields := make([][2]string, 0, len(v.O.HeaderFields))
	for _, field := range v.O.HeaderFields {
		idx := strings.Index(field, ":")
		if idx <= 0 {
			return newUserErrorF("bad header field %q: want \"Name: value\"", field)
		}
		fields = append(fields, [2]string{
			strings.TrimSpace(field[:idx]),
			strings.TrimSpace(field[idx+1:]),
		})
	}
	for _, c := range v.O.Comments {
		if len(c) == 0 || c[0] != '#' {
			return newUserErrorF("bad comment %q: comment lines start with '#'", c)
		}
	}

	poFile := args[0]
	f, err := util.ReadPoFile(poFile)
	if err != nil {
		return NewStandardErrorF("%v", err)
	}

	if len(args) == 3 {
		msgid, msgstr := args[1], args[2]
		e, created := util.SetTranslation(f, msgid, msgstr, v.O.Comments)
		if created {
			log.Debugf("added new entry for %q", msgid)
		}
		if v.O.Fuzzy && !e.IsHeader() {
			e.SetFuzzy(true)
		}
	}
	for _, field := range fields {
		f.SetHeaderField(field[0], field[1])
	}

	return util.SavePoFile(f, poFile, v.O.Output, stdout(v.cmd), flag.InPlace(), !flag.NoObsolete())
}

var setCmd = setCommand{}

func init() {
	rootCmd.AddCommand(setCmd.Command())
}
