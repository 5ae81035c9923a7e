package cmd

import (
	"fmt"

	"github.com/git-l10n/pocat/util"
	"github.com/spf13/cobra"
)

type lookupCommand struct {
	cmd *cobra.Command
}

func (v *lookupCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "lookup <po-file> <msgid>...",
		Short: "Print the translation of msgids",
		Long: `Print the translation of each msgid, one per line. A msgid that is not in
the PO file is reported as an error after all msgids are printed.
An empty msgid looks up the header.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v lookupCommand) Execute(args []string) error {
	if len(args) < 2 {
		return newUserError("lookup requires arguments: <po-file> <msgid>...")
	}

	f, err := util.ReadPoFile(args[0])
	if err != nil {
		return NewStandardErrorF("%v", err)
	}

	var missing []string
	w := stdout(v.cmd)
	for _, r := range util.LookupMsgIDs(f, args[1:]) {
		if !r.Found {
			missing = append(missing, r.MsgID)
			continue
		}
		fmt.Fprintln(w, r.MsgStr)
	}
	if len(missing) > 0 {
		util.ReportWarnAndErrors(missing, "not found", false)
		return NewStandardErrorF("%d msgid(s) not found in %s", len(missing), args[0])
	}
	return nil
}

var lookupCmd = lookupCommand{}

func init() {
	rootCmd.AddCommand(lookupCmd.Command())
}
