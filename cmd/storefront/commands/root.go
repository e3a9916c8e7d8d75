package commands

import (
	"github.com/spf13/cobra"

	"storefront/pkg/config"
)

var cfg config.Config

// Execute runs the root command
func Execute() error {
	root := newRootCmd()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	cfg = config.Load()

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Digital products landing page server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.ConfigureLogging()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "catalog YAML file (default: built-in catalog)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd(), exportCmd(), validateCmd(), dumpCmd())
	return root
}
