package cmd

import (
	"errors"

	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/po"
	"github.com/git-l10n/pocat/util"
	"github.com/spf13/cobra"
)

type msgSelectCommand struct {
	cmd *cobra.Command
	O   struct {
		Keep    bool
		Delete  bool
		IDsFile string
		Output  string
	}
}

func (v *msgSelectCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:     "select (--keep | --delete) [--ids-file <file>] [-o <output>] <po-file> [msgid...]",
		Aliases: []string{"msg-select"},
		Short:   "Keep or delete entries of a PO file by msgid",
		Long: `Keep only, or delete, the entries whose msgid is given on the command line
or in the file given by --ids-file (one msgid per line, PO escapes such as \n allowed).

The operation is all or nothing: if any msgid is not in the PO file, the
unknown msgids are reported and nothing is written.

Examples:
  pocat select --keep po/zh_CN.po "Hello" "World"
  pocat select --delete --ids-file removed.txt -i po/zh_CN.po`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	fs.BoolVar(&v.O.Keep, "keep", false, "keep only the given entries")
	fs.BoolVar(&v.O.Delete, "delete", false, "delete the given entries")
	_ = fs.SetAnnotation("keep", groupAnnotationKey, []string{"Operation"})
	_ = fs.SetAnnotation("delete", groupAnnotationKey, []string{"Operation"})

	fs.StringVar(&v.O.IDsFile, "ids-file", "", "read msgids from file, one per line")
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	_ = fs.SetAnnotation("ids-file", groupAnnotationKey, []string{"General options"})
	_ = fs.SetAnnotation("output", groupAnnotationKey, []string{"General options"})

	v.cmd.SetUsageTemplate(groupedUsageTemplate)

	return v.cmd
}

func (v msgSelectCommand) Execute(args []string) error {
	if len(args) < 1 {
		return newUserError("select requires at least one argument: <po-file>")
	}
	if v.O.Keep == v.O.Delete {
		return newUserError("exactly one of --keep and --delete is required")
	}

	poFile := args[0]
	ids, err := util.ReadMsgIDs(args[1:], v.O.IDsFile)
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	if len(ids) == 0 && v.O.Delete {
		return newUserError("no msgid given")
	}

	f, err := util.ReadPoFile(poFile)
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	if err := util.SelectEntries(f, ids, v.O.Keep); err != nil {
		var verr *po.ValidationError
		if errors.As(err, &verr) {
			util.ReportWarnAndErrors(verr.Unknown, "unknown msgid", false)
		}
		return NewStandardErrorF("%s: %v", poFile, err)
	}

	return util.SavePoFile(f, poFile, v.O.Output, stdout(v.cmd), flag.InPlace(), !flag.NoObsolete())
}

var msgSelectCmd = msgSelectCommand{}

func init() {
	rootCmd.AddCommand(msgSelectCmd.Command())
}
