// Package commands implements the strsearch command tree.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/coregx/strsearch/internal/config"
	"github.com/coregx/strsearch/internal/logger"
)

// app holds state shared by every command of one invocation.
type app struct {
	configPath string
	jsonLog    bool
	verbose    bool

	cfg *config.Config
}

// NewRootCommand returns the strsearch command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "strsearch",
		Short: "Exact substring search with five algorithms and a heuristic selector",
		Long: `strsearch finds every occurrence of a pattern in a text.

Five algorithms return identical results: Naive, KMP, RabinKarp, BoyerMoore
and Horspool. A heuristic selector predicts which one is fastest from the
pattern length, the text length and the pattern content.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (STRSEARCH_* prefix)
3. The file given with --config, or ./strsearch.toml
4. Default values

Examples:
  strsearch search ABA <<< ABABABA           # 0,2,4
  strsearch search -a KMP needle haystack.txt
  strsearch choose --explain "quick brown fox" book.txt
  strsearch bench --generate 100000 --alphabet ACGT
  strsearch list --describe
  strsearch config show --format yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			jsonLog := cfg.Log.JSON || a.jsonLog
			verbose := cfg.Log.Verbose || a.verbose
			if err := logger.InitializeTo(cmd.ErrOrStderr(), jsonLog, verbose); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Logger.Debugw("config loaded", logger.FieldConfigFile, cfg.Source)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ./strsearch.toml)")
	root.PersistentFlags().BoolVar(&a.jsonLog, "json-log", false, "Write logs as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newChooseCmd(a))
	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}
