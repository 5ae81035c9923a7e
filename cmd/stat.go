package cmd

import (
	"fmt"
	"strings"

	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
	O   struct {
		Msgfmt bool
	}
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat <po-file>",
		Short: "Report statistics for a PO file",
		Long: `Report entry statistics for a PO file:
  translated   - entries with non-empty translation
  untranslated - entries with empty msgstr
  same         - entries where msgstr equals msgid (suspect untranslated)
  fuzzy        - entries with fuzzy flag
  obsolete     - obsolete entries (#~ format)

With -v a table is printed together with the language of the header.
With --msgfmt the line matches the output of "msgfmt --statistics".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().BoolVar(&v.O.Msgfmt, "msgfmt", false, "print statistics the way msgfmt does")

	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	if len(args) != 1 {
		return newUserError("stat requires exactly one argument: <po-file>")
	}

	poFile := args[0]
	if !util.IsFile(poFile) {
		return newUserError("file does not exist:", poFile)
	}

	f, err := util.ReadPoFile(poFile)
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	stats := util.CountPoReportStats(f)
	w := stdout(v.cmd)

	switch {
	case v.O.Msgfmt:
		fmt.Fprint(w, util.FormatMsgfmtStatistics(stats))
	case flag.Verbose() > 0:
		title := fmt.Sprintf("PO file: %s", poFile)
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, strings.Repeat("-", len(title)))
		if lang, err := f.Language(); err == nil {
			fmt.Fprintf(w, "  language:     %s\n", lang)
		}
		fmt.Fprintf(w, "  translated:   %d\n", stats.Translated)
		fmt.Fprintf(w, "  untranslated: %d\n", stats.Untranslated)
		fmt.Fprintf(w, "  same:         %d\n", stats.Same)
		fmt.Fprintf(w, "  fuzzy:        %d\n", stats.Fuzzy)
		fmt.Fprintf(w, "  obsolete:     %d\n", stats.Obsolete)
	default:
		fmt.Fprint(w, util.FormatStatLine(stats))
	}

	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
