package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dosanma1/sysgen/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var configs, vars []string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration as YAML",
		Long: `Merge configuration files and key.path=value overrides exactly as
generate does, and print the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configs, vars)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(cfg.Interface()); err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringArrayVarP(&configs, "config", "c", nil, "Configuration file in JSON, YAML or TOML (repeatable)")
	cmd.Flags().StringArrayVarP(&vars, "var", "v", nil, "Definition key.path=value to add to the configuration (repeatable)")

	return cmd
}
