package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coregx/strsearch/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the strsearch configuration",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Display the configuration after defaults, the config file and STRSEARCH_* variables are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, a.cfg, format)
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")

	cmd.AddCommand(show)
	return cmd
}

func showConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	out := cmd.OutOrStdout()

	source := cfg.Source
	if source == "" {
		source = "defaults"
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		_, err = fmt.Fprintf(out, "# strsearch configuration (%s)\n%s", source, data)
		return err

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		_, err = fmt.Fprintf(out, "# strsearch configuration (%s)\n%s", source, data)
		return err

	default:
		return errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			"supported formats: toml, json, yaml")
	}
}
