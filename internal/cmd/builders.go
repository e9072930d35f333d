package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/sysgen/internal/builder"
)

func newBuildersCmd(a *app) *cobra.Command {
	var schemaOf string

	cmd := &cobra.Command{
		Use:   "builders",
		Short: "List available builders",
		Long: `List the registered builders, or print the JSON schema of one builder's
configuration with --schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaOf != "" {
				return printSchema(a, schemaOf)
			}
			for _, name := range a.registry.List() {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaOf, "schema", "", "Print the configuration schema of the named builder")
	return cmd
}

func printSchema(a *app, name string) error {
	b, err := a.registry.Get(name)
	if err != nil {
		return err
	}
	sp, ok := b.(builder.SchemaProvider)
	if !ok {
		return fmt.Errorf("builder %q does not publish a configuration schema", name)
	}
	_, err = a.out.Write(sp.Schema())
	return err
}
