package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/strsearch"
)

func newListCmd(a *app) *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Long: `List the available algorithms, one per line. --describe prints the
selector's decision procedure with the configured thresholds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if describe {
				h, err := a.cfg.NewSelector()
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, h.Describe())
				return err
			}

			for _, algo := range strsearch.Algorithms() {
				if _, err := fmt.Fprintln(out, algo); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&describe, "describe", false, "Describe the selection strategy")
	return cmd
}

func algorithmList() string {
	names := make([]string, 0, len(strsearch.Algorithms()))
	for _, algo := range strsearch.Algorithms() {
		names = append(names, algo.String())
	}
	return strings.Join(names, ", ")
}
