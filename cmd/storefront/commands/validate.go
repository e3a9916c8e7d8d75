package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/catalog"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a catalog file and report every problem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.CatalogFile
			if len(args) == 1 {
				path = args[0]
			}

			if path == "" {
				if err := catalog.Validate(catalog.Default()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "built-in catalog is valid")
				return nil
			}

			c, err := catalog.Load(path)
			if err != nil {
				var joined interface{ Unwrap() []error }
				if errors.As(err, &joined) {
					for _, e := range joined.Unwrap() {
						fmt.Fprintln(cmd.ErrOrStderr(), e)
					}
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
				return fmt.Errorf("%s is invalid", path)
			}

			products := 0
			for _, page := range c.Pages {
				products += page.CardCount()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d pages, %d cards\n", path, len(c.Pages), products)
			return nil
		},
	}
}
