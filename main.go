package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/git-l10n/pocat/cmd"
)

const (
	// Program is name for this project
	Program = "pocat"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			if resp.Cmd.SilenceErrors {
				fmt.Fprintf(errOut, "ERROR: %s\n\n", resp.Err)
			}
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else if resp.Cmd.SilenceErrors {
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			fmt.Fprintln(errOut, "")
			// Remove Program prefix from the command path to get the subcommand
			cmdPath := resp.Cmd.CommandPath()
			subCmdPath := strings.TrimPrefix(cmdPath, Program+" ")
			if subCmdPath == "" {
				// Fallback to Name() if CommandPath() only contains Program
				subCmdPath = resp.Cmd.Name()
			}
			fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", Program, subCmdPath)
		}
		os.Exit(-1)
	}
}
