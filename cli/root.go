// Package cli implements the roomplanner command line: serve the HTTP API,
// plan a single room, or list the furniture catalog.
package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"roomplanner/catalog"
	"roomplanner/config"
)

type rootOptions struct {
	verbose    bool
	configPath string
	catalog    string
}

// NewRootCommand builds the command tree writing results to stdout and logs
// to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "roomplanner",
		Short:         "Place furniture in a room within a budget",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "furniture catalog .xlsx (overrides config)")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newPlanCmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (o *rootOptions) load(ctx context.Context) (config.Config, catalog.Provider, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if o.catalog != "" {
		cfg.Catalog.Path = o.catalog
	}
	provider, err := catalog.Open(cfg.Catalog.Path, loggerFromContext(ctx).WithPrefix("catalog"))
	if err != nil {
		return cfg, nil, err
	}
	return cfg, provider, nil
}
