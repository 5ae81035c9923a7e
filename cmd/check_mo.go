package cmd

import (
	"github.com/git-l10n/pocat/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type checkMoCommand struct {
	cmd *cobra.Command
}

func (v *checkMoCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check-mo <po-file> <mo-file>",
		Short: "Check a compiled MO file against its PO file",
		Long: `Load a compiled MO file and check that it holds exactly the translated,
non-fuzzy entries of the PO file with the same translations, and the same
Language header.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v checkMoCommand) Execute(args []string) error {
	if len(args) != 2 {
		return newUserError("check-mo requires exactly two arguments: <po-file> <mo-file>")
	}
	for _, name := range args {
		if !util.IsFile(name) {
			return newUserError("file does not exist:", name)
		}
	}

	errs, err := util.CheckMoFile(args[0], args[1])
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	if len(errs) > 0 {
		util.ReportWarnAndErrors(errs, "[check-mo]", false)
		return NewStandardErrorF("%s does not match %s", args[1], args[0])
	}
	log.Infof("%s matches %s", args[1], args[0])
	return nil
}

var checkMoCmd = checkMoCommand{}

func init() {
	rootCmd.AddCommand(checkMoCmd.Command())
}
