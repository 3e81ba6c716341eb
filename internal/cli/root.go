// Package cli wires the command-line surface: flag parsing, config file
// merging, and handoff to the pipeline. Flags override config file values,
// which override defaults.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/filenorm/internal/config"
	"github.com/backmassage/filenorm/internal/display"
	"github.com/backmassage/filenorm/internal/logging"
	"github.com/backmassage/filenorm/internal/naming"
	"github.com/backmassage/filenorm/internal/pipeline"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand builds the filenorm root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filenorm [path]",
		Short: "Standardize file names with consistent formatting",
		Long: `Filenorm standardizes file names: it lowercases, turns spaces and
underscores into hyphens, rewrites embedded dates into canonical form, and
resolves name collisions across the whole batch before touching anything.

The full rename plan is computed up front; --dry-run prints it without
renaming. Examples:

  filenorm ~/Documents
  filenorm -r -n ~/Documents          # recursive preview
  filenorm -d -e pdf -e docx ./inbox  # prefix creation dates, filter types
  filenorm --year-month ./archive     # dates rendered as YYYY-MM`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().BoolP("recursive", "r", false, "Process directories recursively")
	cmd.Flags().BoolP("dry-run", "n", false, "Show what would be renamed without doing it")
	cmd.Flags().BoolP("add-date", "d", false, "Prefix file creation date when the name has none")
	cmd.Flags().Bool("year-month", false, "Render dates as YYYY-MM")
	cmd.Flags().Bool("year-only", false, "Render dates as YYYY")
	cmd.Flags().StringArrayP("ext", "e", nil, "Only process files with this extension (repeatable)")
	cmd.Flags().Bool("dirs", false, "Also normalize directory names")
	cmd.Flags().String("config", "", "Path to config file (default: "+config.DefaultFile+")")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("year-month", "year-only")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return fmt.Errorf("%s does not exist", cfg.Path)
	}

	log := logging.Setup(cfg.Verbose, cmd.ErrOrStderr())
	rep := display.NewReporter(cmd.OutOrStdout(), cfg.DryRun)

	stats, err := pipeline.Run(cmd.Context(), cfg, log, rep)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d rename(s) failed", stats.Failed)
	}
	return nil
}

// loadConfig merges defaults, the optional YAML file, and explicitly set
// flags, in that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.DefaultFile
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		cfg.Path = args[0]
	}
	if flags.Changed("recursive") {
		cfg.Recursive, _ = flags.GetBool("recursive")
	}
	if flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("add-date") {
		cfg.AddDatePrefix, _ = flags.GetBool("add-date")
	}
	if flags.Changed("dirs") {
		cfg.IncludeDirs, _ = flags.GetBool("dirs")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("ext") {
		cfg.Extensions, _ = flags.GetStringArray("ext")
	}
	if yearMonth, _ := flags.GetBool("year-month"); yearMonth {
		cfg.Granularity = naming.GranularityMonth
	}
	if yearOnly, _ := flags.GetBool("year-only"); yearOnly {
		cfg.Granularity = naming.GranularityYear
	}
	return cfg, nil
}
