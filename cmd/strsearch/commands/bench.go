package commands

import (
	"math/rand/v2"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/coregx/strsearch/internal/bench"
	"github.com/coregx/strsearch/internal/config"
	"github.com/coregx/strsearch/selector"
)

type benchOptions struct {
	patterns     []string
	patternsFile string
	escaped      bool
	generate     int
	alphabet     string
	seed         uint64
	iterations   int
	warmup       int
	noVerify     bool
	selected     bool
	runAll       bool
}

func newBenchCmd(a *app) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Time every algorithm and check the selector's picks",
		Long: `Time every algorithm on a text and a set of patterns, verify that they all
return the same offsets as an independent Aho-Corasick automaton, and report
how often the selector picked the fastest algorithm.

The text is read from file or standard input, or generated with --generate.
Patterns come from --pattern, --patterns-file, or are cut from the text at
lengths 1, 3, 8, 15, 30 and 60.`,
		Example: `  strsearch bench --generate 100000 --alphabet ACGT
  strsearch bench -p whale -p "Call me Ishmael" moby.txt
  strsearch bench --patterns-file needles.txt --iterations 50 corpus.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, a.cfg, &opts, args)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.patterns, "pattern", "p", nil, "Pattern to time (repeatable)")
	cmd.Flags().StringVar(&opts.patternsFile, "patterns-file", "", "File with one pattern per line")
	cmd.Flags().BoolVarP(&opts.escaped, "escaped", "e", false, `Interpret Go escapes such as \x00 in --pattern values`)
	cmd.Flags().IntVar(&opts.generate, "generate", 0, "Generate a random text of this many bytes")
	cmd.Flags().StringVar(&opts.alphabet, "alphabet", "abcdefghijklmnopqrstuvwxyz ", "Alphabet of the generated text")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Seed of the generated text")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "Timed runs per algorithm (default from config)")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 0, "Untimed runs per algorithm (default from config)")
	cmd.Flags().BoolVar(&opts.noVerify, "no-verify", false, "Skip checking results against the automaton")
	cmd.Flags().BoolVar(&opts.selected, "selected", false, "Run only the selector's pick")
	cmd.Flags().BoolVar(&opts.runAll, "run-all", false, "Use a selector without preferences")

	return cmd
}

func runBench(cmd *cobra.Command, cfg *config.Config, opts *benchOptions, args []string) error {
	text, err := benchText(cmd, opts, args)
	if err != nil {
		return err
	}

	patterns, err := benchPatterns(opts, text)
	if err != nil {
		return err
	}
	if len(patterns) == 0 {
		return errors.WithHint(errors.New("no patterns to benchmark"), "pass --pattern or --patterns-file")
	}

	runOpts := bench.Options{
		Iterations:   cfg.Bench.Iterations,
		Warmup:       cfg.Bench.Warmup,
		Verify:       cfg.Bench.Verify && !opts.noVerify,
		OnlySelected: opts.selected,
	}
	if cmd.Flags().Changed("iterations") {
		runOpts.Iterations = opts.iterations
	}
	if cmd.Flags().Changed("warmup") {
		runOpts.Warmup = opts.warmup
	}

	var s selector.Selector = selector.RunAll{}
	if !opts.runAll {
		h, err := cfg.NewSelector()
		if err != nil {
			return err
		}
		s = h
	}

	runner, err := bench.NewRunner(runOpts, s)
	if err != nil {
		return errors.WithHint(err, "--iterations must be at least 1 and --warmup at least 0")
	}
	report, err := runner.Run(cmd.Context(), text, patterns)
	if err != nil {
		return errors.Wrap(err, "benchmark failed")
	}

	if err := bench.Render(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Println(bench.Summary(report))
	return nil
}

func benchText(cmd *cobra.Command, opts *benchOptions, args []string) ([]byte, error) {
	if opts.generate > 0 {
		if len(args) > 0 {
			return nil, errors.New("--generate cannot be combined with a file")
		}
		if opts.alphabet == "" {
			return nil, errors.New("--alphabet must not be empty")
		}
		return generateText(opts.generate, opts.alphabet, opts.seed), nil
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	return readText(cmd, path, nil)
}

func benchPatterns(opts *benchOptions, text []byte) ([][]byte, error) {
	var patterns [][]byte
	for _, p := range opts.patterns {
		b, err := decodePattern(p, opts.escaped)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, b)
	}

	if opts.patternsFile != "" {
		f, err := os.Open(opts.patternsFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", opts.patternsFile)
		}
		defer f.Close()

		fromFile, err := bench.ReadPatterns(f)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", opts.patternsFile)
		}
		patterns = append(patterns, fromFile...)
	}

	if len(patterns) == 0 {
		patterns = samplePatterns(text)
	}
	return patterns, nil
}

// sampleLengths are the pattern lengths cut from the text when no patterns
// are given, one per selector rule.
var sampleLengths = []int{1, 3, 8, 15, 30, 60}

// samplePatterns cuts patterns from the middle of text.
func samplePatterns(text []byte) [][]byte {
	var patterns [][]byte
	for _, m := range sampleLengths {
		if m > len(text) {
			break
		}
		start := (len(text) - m) / 2
		patterns = append(patterns, append([]byte{}, text[start:start+m]...))
	}
	return patterns
}

func generateText(n int, alphabet string, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed))
	text := make([]byte, n)
	for i := range text {
		text[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return text
}
