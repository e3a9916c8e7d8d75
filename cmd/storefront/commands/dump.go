package commands

import (
	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"storefront/internal/catalog"
)

func dumpCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the built-in catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.Marshal(catalog.Default())
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return renameio.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}
