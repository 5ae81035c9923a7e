// Package cmd provides CLI implementations.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/git-l10n/pocat/config"
	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/repository"
	"github.com/git-l10n/pocat/version"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = rootCommand{}

	// loadedConfig is the merged configuration, set by initConfig.
	loadedConfig = config.Default()
)

// errorWithUsage marks an error that should display command usage.
type errorWithUsage struct{ msg string }

func (e errorWithUsage) Error() string { return e.msg }

// NewErrorWithUsage creates an error that should display usage (e.g. argument/flag errors).
func NewErrorWithUsage(a ...interface{}) error {
	return errorWithUsage{msg: fmt.Sprint(a...)}
}

// NewErrorWithUsageF creates an error that should display usage.
func NewErrorWithUsageF(format string, a ...interface{}) error {
	return errorWithUsage{msg: fmt.Sprintf(format, a...)}
}

// NewStandardError creates an error that should not display usage.
func NewStandardError(a ...interface{}) error {
	return fmt.Errorf("%s", fmt.Sprint(a...))
}

// NewStandardErrorF creates an error that should not display usage.
func NewStandardErrorF(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

// IsErrorWithUsage returns true if the error should display command usage.
func IsErrorWithUsage(err error) bool {
	var e errorWithUsage
	return errors.As(err, &e)
}

func newUserError(a ...interface{}) error {
	return errorWithUsage{msg: strings.TrimSuffix(fmt.Sprintln(a...), "\n")}
}

func newUserErrorF(format string, a ...interface{}) error {
	return NewErrorWithUsageF(format, a...)
}

// Response wraps error for subcommand, and is returned from cmd package.
type Response struct {
	// Err contains error returned from the subcommand executed.
	Err error

	// Cmd contains the command object.
	Cmd *cobra.Command
}

// IsUserError returns true if the usage of the command should be shown.
func (v Response) IsUserError() bool {
	return v.Err != nil && IsErrorWithUsage(v.Err)
}

type rootCommand struct {
	cmd *cobra.Command
}

func (v *rootCommand) initLog() {
	f := new(log.TextFormatter)
	f.DisableTimestamp = true
	f.DisableLevelTruncation = true
	if flag.GitHubActionEvent() != "" || isatty.IsTerminal(os.Stderr.Fd()) {
		f.ForceColors = true
	}
	log.SetFormatter(f)
	verbose := flag.Verbose()
	quiet := flag.Quiet()
	if verbose == 1 {
		log.SetLevel(log.DebugLevel)
	} else if verbose > 1 {
		log.SetLevel(log.TraceLevel)
	} else if quiet == 1 {
		log.SetLevel(log.WarnLevel)
	} else if quiet > 1 {
		log.SetLevel(log.ErrorLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func (v *rootCommand) initRepository() {
	repository.OpenRepository("")
}

// initConfig loads pocat.yaml files. Their values become viper defaults, so
// flags given on the command line still win.
func (v *rootCommand) initConfig() {
	cfg, err := config.Load(flag.ConfigFile())
	if err != nil {
		log.Fatal(err)
	}
	applyConfig(cfg)
}

func applyConfig(cfg *config.Config) {
	loadedConfig = cfg
	viper.SetDefault("from-code", cfg.FromCode)
	viper.SetDefault("no-obsolete", config.Bool(cfg.NoObsolete))
	viper.SetDefault("in-place", config.Bool(cfg.WriteInPlace))
	viper.SetDefault("export.format", cfg.Export.Format)
	viper.SetDefault("export.comment-separator", cfg.Export.CommentSeparator)
}

// Command represents the base command when called without any subcommands
func (v *rootCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "pocat",
		Short: "Read, filter and edit gettext PO files",
		// Let main.go handle error output; do not show usage on every error
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return NewErrorWithUsage(err)
	})
	v.cmd.Version = version.Version
	v.cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	v.cmd.PersistentFlags().CountP("quiet",
		"q",
		"quiet mode")
	v.cmd.PersistentFlags().CountP("verbose",
		"v",
		"verbose mode")
	v.cmd.PersistentFlags().String("github-action-event",
		"",
		"github-action event name")
	v.cmd.PersistentFlags().String("config",
		"",
		"load configuration from this file (overrides ~/.pocat.yaml and repo pocat.yaml)")
	v.cmd.PersistentFlags().String("from-code",
		"",
		"convert input files from this charset to UTF-8")
	v.cmd.PersistentFlags().BoolP("in-place",
		"i",
		false,
		"write changes back to the input file when no output is given")
	v.cmd.PersistentFlags().Bool("no-obsolete",
		false,
		"leave obsolete entries out of the output")
	v.cmd.PersistentFlags().BoolP("yes",
		"y",
		false,
		"do not ask before overwriting files")
	_ = v.cmd.PersistentFlags().MarkHidden("github-action-event")

	for _, name := range []string{
		"quiet",
		"verbose",
		"github-action-event",
		"config",
		"from-code",
		"in-place",
		"no-obsolete",
		"yes",
	} {
		_ = viper.BindPFlag(name, v.cmd.PersistentFlags().Lookup(name))
	}

	return v.cmd
}

func (v rootCommand) Execute(args []string) error {
	return NewErrorWithUsage("run 'pocat -h' for help")
}

func (v *rootCommand) AddCommand(cmds ...*cobra.Command) {
	v.Command().AddCommand(cmds...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() Response {
	var (
		resp Response
	)

	// Ensure all commands use SilenceErrors so main.go handles error output.
	setSilenceErrorsRecursive(rootCmd.Command())

	c, err := rootCmd.Command().ExecuteC()
	resp.Err = err
	resp.Cmd = c
	return resp
}

func init() {
	cobra.OnInitialize(rootCmd.initLog)
	cobra.OnInitialize(rootCmd.initRepository)
	cobra.OnInitialize(rootCmd.initConfig)
}

// stdout returns where c prints its results.
func stdout(c *cobra.Command) io.Writer {
	if c == nil {
		return os.Stdout
	}
	return c.OutOrStdout()
}

// setSilenceErrorsRecursive sets SilenceErrors on c and all its descendants.
func setSilenceErrorsRecursive(c *cobra.Command) {
	c.SilenceErrors = true
	for _, child := range c.Commands() {
		setSilenceErrorsRecursive(child)
	}
}
