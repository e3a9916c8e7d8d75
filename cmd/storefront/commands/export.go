package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/catalog"
	"storefront/internal/export"
	"storefront/pkg/config"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing pages as static HTML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Open(cfg.CatalogFile)
			if err != nil {
				return err
			}

			written, err := export.Site(cmd.Context(), store.Get(), out)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", config.DefaultExportDir, "output directory")
	return cmd
}
