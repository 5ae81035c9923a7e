package cmd

import (
	"fmt"

	"github.com/git-l10n/pocat/config"
	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/repository"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type showConfigCommand struct {
	cmd *cobra.Command
}

func (v *showConfigCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "show-config",
		Short: "Show the current configuration in YAML format",
		Long: `Display the merged configuration in YAML format.

The configuration is read from:
- User home directory: ~/.pocat.yaml (lower priority)
- Repository root: <repo-root>/pocat.yaml (higher priority, overrides user config)

With --config only the given file is read. Missing files are skipped, so
without any file the built-in defaults are shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v showConfigCommand) Execute(args []string) error {
	if len(args) != 0 {
		return NewErrorWithUsage("show-config command needs no arguments")
	}

	yamlData, err := yaml.Marshal(loadedConfig)
	if err != nil {
		return NewStandardErrorF("failed to marshal configuration to YAML: %v", err)
	}

	w := stdout(v.cmd)
	fmt.Fprintf(w, "# pocat configuration for %s, merged from:\n", repository.WorkDirOrCwd())
	if name := flag.ConfigFile(); name != "" {
		fmt.Fprintf(w, "# - %s\n", name)
	} else {
		for _, name := range config.Files() {
			fmt.Fprintf(w, "# - %s\n", name)
		}
	}
	fmt.Fprintln(w)
	_, err = w.Write(yamlData)
	return err
}

var showConfigCmd = showConfigCommand{}

func init() {
	rootCmd.AddCommand(showConfigCmd.Command())
}
