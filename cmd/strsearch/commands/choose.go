package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/strsearch/selector"
)

type chooseOptions struct {
	explain bool
	escaped bool
	text    string
}

func newChooseCmd(a *app) *cobra.Command {
	var opts chooseOptions

	cmd := &cobra.Command{
		Use:   "choose <pattern> [file]",
		Short: "Print the algorithm the selector picks for a pattern and text",
		Long: `Print the algorithm the heuristic selector predicts to be fastest, without
running any search. --explain adds the rule that fired and the statistics it
was based on.`,
		Example: `  strsearch choose --text "$(cat book.txt)" whale
  strsearch choose --explain ACGTACGTAC genome.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			h, err := a.cfg.NewSelector()
			if err != nil {
				return err
			}
			d := h.Choose(text, pattern)

			out := cmd.OutOrStdout()
			if !opts.explain {
				_, err = fmt.Fprintln(out, d)
				return err
			}
			return explain(cmd, d, h.Config())
		},
	}

	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Show the rule and statistics behind the choice")
	cmd.Flags().BoolVarP(&opts.escaped, "escaped", "e", false, `Interpret Go escapes such as \x00 in the pattern`)
	cmd.Flags().StringVar(&opts.text, "text", "", "Use this text instead of a file or standard input")

	return cmd
}

func explain(cmd *cobra.Command, d selector.Decision, c selector.Config) error {
	out := cmd.OutOrStdout()
	p := d.Profile

	fmt.Fprintf(out, "algorithm:  %s\n", d)
	fmt.Fprintf(out, "rule:       %s\n", d.Rule)
	fmt.Fprintf(out, "reason:     %s\n", d.Reason())
	fmt.Fprintf(out, "text:       %d bytes\n", p.N)
	fmt.Fprintf(out, "pattern:    %d bytes\n", p.M)
	if p.RepetitionChecked {
		fmt.Fprintf(out, "top byte:   %.0f%% of pattern (threshold %.0f%%)\n", p.MaxFrequencyRatio*100, c.RepetitionRatio*100)
		if p.Period > 0 {
			fmt.Fprintf(out, "period:     %d\n", p.Period)
		}
	}
	if p.AlphabetChecked {
		fmt.Fprintf(out, "alphabet:   %d (small <= %d)\n", p.Alphabet, c.SmallAlphabet)
	}
	return nil
}
