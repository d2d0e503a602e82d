package commands

import (
	"fmt"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/coregx/strsearch"
	"github.com/coregx/strsearch/engine"
	"github.com/coregx/strsearch/internal/config"
	"github.com/coregx/strsearch/internal/logger"
)

type searchOptions struct {
	algorithm string
	all       bool
	escaped   bool
	first     bool
	text      string
}

func newSearchCmd(a *app) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <pattern> [file]",
		Short: "Print the offsets of every occurrence of a pattern",
		Long: `Print the starting offsets of every occurrence of pattern, overlapping
matches included, as a comma-separated list ("0,2,4"). No matches print an
empty line.

The text is read from file, from --text, or from standard input.

The algorithm is taken from --algorithm, else from search.default_algorithm.
"auto" lets the selector decide.`,
		Example: `  strsearch search --text ABABABA ABA        # 0,2,4
  strsearch search -a BoyerMoore GATTACA genome.txt
  strsearch search --all --escaped '\x00\x01' data.bin`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a.cfg, &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", `Algorithm name or "auto" (default from config)`)
	cmd.Flags().BoolVar(&opts.all, "all", false, "Run every algorithm and print each result")
	cmd.Flags().BoolVarP(&opts.escaped, "escaped", "e", false, `Interpret Go escapes such as \x00 in the pattern`)
	cmd.Flags().BoolVar(&opts.first, "first", false, "Print only the first offset, or -1")
	cmd.Flags().StringVar(&opts.text, "text", "", "Search this text instead of a file or standard input")

	return cmd
}

func runSearch(cmd *cobra.Command, cfg *config.Config, opts *searchOptions, args []string) error {
	pattern, err := decodePattern(args[0], opts.escaped)
	if err != nil {
		return err
	}
	var path string
	if len(args) > 1 {
		path = args[1]
	}
	text, err := readText(cmd, path, textFlag(cmd, &opts.text))
	if err != nil {
		return err
	}

	if opts.all {
		return searchAll(cmd, text, pattern)
	}

	name := opts.algorithm
	if name == "" {
		name = cfg.Search.DefaultAlgorithm
	}

	algo, err := resolveAlgorithm(cfg, name, text, pattern)
	if err != nil {
		return err
	}

	start := time.Now()
	pos, err := strsearch.Search(text, pattern, algo)
	if err != nil {
		return errors.Wrapf(err, "search with %s", algo)
	}
	logger.Logger.Debugw("search finished",
		logger.FieldAlgorithm, algo.String(),
		logger.FieldTextLen, len(text),
		logger.FieldPatternLen, len(pattern),
		logger.FieldCount, len(pos),
		logger.FieldDurationNS, time.Since(start).Nanoseconds())

	out := cmd.OutOrStdout()
	if opts.first {
		first := -1
		if len(pos) > 0 {
			first = pos[0]
		}
		_, err = fmt.Fprintln(out, first)
		return err
	}
	_, err = fmt.Fprintln(out, strsearch.FormatPositions(pos))
	return err
}

// resolveAlgorithm maps a name, or "auto", to an algorithm.
func resolveAlgorithm(cfg *config.Config, name string, text, pattern []byte) (engine.Algorithm, error) {
	if name != config.AutoAlgorithm {
		algo, err := strsearch.ParseAlgorithm(name)
		if err != nil {
			return algo, errors.WithHintf(err, "valid names: %s, or %q", algorithmList(), config.AutoAlgorithm)
		}
		return algo, nil
	}

	h, err := cfg.NewSelector()
	if err != nil {
		return -1, err
	}
	d := h.Choose(text, pattern)
	logger.Logger.Debugw("algorithm selected",
		logger.FieldAlgorithm, d.String(),
		logger.FieldRule, d.Rule.String())
	if !d.HasPreference() {
		return strsearch.DefaultAlgorithm, nil
	}
	return d.Algorithm, nil
}

// searchAll runs every algorithm and prints one line per algorithm. It fails
// when the algorithms disagree.
func searchAll(cmd *cobra.Command, text, pattern []byte) error {
	out := cmd.OutOrStdout()

	var want []int
	for i, algo := range strsearch.Algorithms() {
		pos, err := strsearch.Search(text, pattern, algo)
		if err != nil {
			return errors.Wrapf(err, "search with %s", algo)
		}
		if _, err := fmt.Fprintf(out, "%-10s %s\n", algo, strsearch.FormatPositions(pos)); err != nil {
			return err
		}

		if i == 0 {
			want = pos
			continue
		}
		if !slices.Equal(pos, want) {
			return errors.Newf("%s disagrees with %s", algo, strsearch.Algorithms()[0])
		}
	}

	pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("all algorithms agree on %d matches", len(want))
	return nil
}
