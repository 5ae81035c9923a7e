package cmd

import (
	"io"

	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/po"
	"github.com/git-l10n/pocat/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type msgCatCommand struct {
	cmd *cobra.Command
	O   struct {
		Output       string
		JSON         bool
		Translated   bool
		Untranslated bool
		Fuzzy        bool
		OnlySame     bool
		OnlyObsolete bool
		UnsetFuzzy   bool
		ClearFuzzy   bool
	}
}

func (v *msgCatCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:     "cat [-o <output>] [--json] <po-file>",
		Aliases: []string{"msg-cat"},
		Short:   "Print a PO or gettext JSON file, optionally filtered",
		Long: `Read a PO file (or a gettext JSON file, detected by a leading '{') and
write it back as PO text: the header, the entries and the obsolete entries.

By default, all entries are selected (translated, same, untranslated, fuzzy, obsolete).
Use --translated, --untranslated, --fuzzy to filter by state (OR relationship).
Use the global --no-obsolete to exclude obsolete; --only-same or --only-obsolete for a single state.

Write result to the file given by -o; use -o - or omit -o to write to stdout.
With --in-place and no -o, the input file is overwritten.
Use --json to output gettext JSON; otherwise output is PO format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	// General options
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	fs.BoolVar(&v.O.JSON, "json", false, "output JSON instead of PO text")
	_ = fs.SetAnnotation("output", groupAnnotationKey, []string{"General options"})
	_ = fs.SetAnnotation("json", groupAnnotationKey, []string{"General options"})

	// State filter: translated, untranslated, fuzzy (OR when combined)
	fs.BoolVar(&v.O.Translated, "translated", false, "select translated entries")
	fs.BoolVar(&v.O.Untranslated, "untranslated", false, "select untranslated entries")
	fs.BoolVar(&v.O.Fuzzy, "fuzzy", false, "select fuzzy entries")
	_ = fs.SetAnnotation("translated", groupAnnotationKey, []string{"State filter"})
	_ = fs.SetAnnotation("untranslated", groupAnnotationKey, []string{"State filter"})
	_ = fs.SetAnnotation("fuzzy", groupAnnotationKey, []string{"State filter"})

	// Single-state filter: mutually exclusive with state filter above
	fs.BoolVar(&v.O.OnlySame, "only-same", false, "only entries where msgstr equals msgid")
	fs.BoolVar(&v.O.OnlyObsolete, "only-obsolete", false, "only obsolete entries")
	_ = fs.SetAnnotation("only-same", groupAnnotationKey, []string{"Single-state filter"})
	_ = fs.SetAnnotation("only-obsolete", groupAnnotationKey, []string{"Single-state filter"})

	// Others
	fs.BoolVar(&v.O.UnsetFuzzy, "unset-fuzzy", false,
		"remove fuzzy marker from fuzzy entries in output (keep translations)")
	fs.BoolVar(&v.O.ClearFuzzy, "clear-fuzzy", false,
		"remove fuzzy marker and clear msgstr for fuzzy entries")
	_ = fs.SetAnnotation("unset-fuzzy", groupAnnotationKey, []string{"Others"})
	_ = fs.SetAnnotation("clear-fuzzy", groupAnnotationKey, []string{"Others"})

	v.cmd.SetUsageTemplate(groupedUsageTemplate)

	return v.cmd
}

func (v msgCatCommand) Execute(args []string) error {
	if len(args) != 1 {
		return newUserError("cat requires exactly one argument: <po-file>")
	}
	if v.O.UnsetFuzzy && v.O.ClearFuzzy {
		return NewErrorWithUsage("--unset-fuzzy and --clear-fuzzy are mutually exclusive")
	}
	filter, err := v.buildFilter()
	if err != nil {
		return err
	}

	poFile := args[0]
	f, err := util.ReadPoFile(poFile)
	if err != nil {
		return NewStandardErrorF("%v", err)
	}

	obsolete := util.ApplyEntryFilter(f, filter)
	if v.O.UnsetFuzzy {
		log.Debugf("removed fuzzy marker from %d entries", util.UnsetFuzzy(f))
	}
	if v.O.ClearFuzzy {
		log.Debugf("cleared %d fuzzy entries", util.ClearFuzzy(f))
	}

	output, err := util.OutputPath(poFile, v.O.Output, flag.InPlace())
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	return util.WriteOutput(output, stdout(v.cmd), func(w io.Writer) error {
		if v.O.JSON {
			return util.WriteGettextJSON(util.NewGettextJSON(f, f.Entries(), obsolete), w)
		}
		blocks := append([]*po.Entry{f.Header()}, f.Entries()...)
		_, err := io.WriteString(w, po.Format(append(blocks, obsolete...)))
		return err
	})
}

func (v msgCatCommand) buildFilter() (util.EntryStateFilter, error) {
	if v.O.OnlySame && v.O.OnlyObsolete {
		return util.EntryStateFilter{}, NewErrorWithUsage("--only-same and --only-obsolete are mutually exclusive")
	}
	if v.O.OnlySame && (v.O.Translated || v.O.Untranslated || v.O.Fuzzy) {
		return util.EntryStateFilter{}, NewErrorWithUsage("--only-same is mutually exclusive with --translated, --untranslated, --fuzzy")
	}
	if v.O.OnlyObsolete && (v.O.Translated || v.O.Untranslated || v.O.Fuzzy) {
		return util.EntryStateFilter{}, NewErrorWithUsage("--only-obsolete is mutually exclusive with --translated, --untranslated, --fuzzy")
	}
	return util.EntryStateFilter{
		Translated:   v.O.Translated,
		Untranslated: v.O.Untranslated,
		Fuzzy:        v.O.Fuzzy,
		NoObsolete:   flag.NoObsolete(),
		OnlySame:     v.O.OnlySame,
		OnlyObsolete: v.O.OnlyObsolete,
	}, nil
}

var msgCatCmd = msgCatCommand{}

func init() {
	rootCmd.AddCommand(msgCatCmd.Command())
}
