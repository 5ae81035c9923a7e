package cmd

import (
	"io"

	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type exportCommand struct {
	cmd *cobra.Command
	O   struct {
		Output string
	}
}

func (v *exportCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "export [--format csv|json] [-o <output>] <po-file>",
		Short: "Export a PO file as CSV or gettext JSON",
		Long: `Export the header, the entries and the obsolete entries of a PO file.

The CSV format has the columns comments, msgid and msgstr, with msgid and
msgstr unescaped. Comment lines of an entry are joined by
"export.comment_separator" from the config file (default is a newline).
The default format is taken from "export.format" in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.String("format", util.ExportFormatCSV, "output format: csv or json")
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	_ = viper.BindPFlag("export.format", fs.Lookup("format"))

	return v.cmd
}

func (v exportCommand) Execute(args []string) error {
	if len(args) != 1 {
		return newUserError("export requires exactly one argument: <po-file>")
	}
	format := flag.ExportFormat()
	if format != util.ExportFormatCSV && format != util.ExportFormatJSON {
		return newUserErrorF("unknown format %q, must be csv or json", format)
	}

	f, err := util.ReadPoFile(args[0])
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	opts := util.ExportOptions{
		CommentSeparator: flag.CommentSeparator(),
		NoObsolete:       flag.NoObsolete(),
	}
	return util.WriteOutput(v.O.Output, stdout(v.cmd), func(w io.Writer) error {
		return util.Export(f, format, w, opts)
	})
}

var exportCmd = exportCommand{}

func init() {
	rootCmd.AddCommand(exportCmd.Command())
}
