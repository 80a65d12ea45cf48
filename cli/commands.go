package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"roomplanner/layout"
	"roomplanner/models"
	"roomplanner/render"
	"roomplanner/server"
	"roomplanner/suggest"
	"roomplanner/utils"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API and web form",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg, provider, err := opts.load(ctx)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if !cfg.AIConfigured() {
				logger.Warn("AI service not configured; set OPENROUTER_API_KEY")
			}
			ai := suggest.NewClient(cfg.AI, &http.Client{}, logger.WithPrefix("ai"))

			err = server.New(cfg, provider, ai, logger).Run(ctx)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

type planOptions struct {
	room     models.RoomSpec
	htmlPath string
	pngPath  string
	xlsxPath string
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	po := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a layout for one room and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if msgs := server.ValidateRoom(po.room); len(msgs) > 0 {
				return fmt.Errorf("invalid room: %s", strings.Join(msgs, "; "))
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg, provider, err := opts.load(ctx)
			if err != nil {
				return err
			}
			items, err := provider.List(ctx)
			if err != nil {
				return err
			}

			result := layout.New(logger.WithPrefix("layout")).Generate(po.room, items)
			for _, w := range result.Warnings {
				logger.Warn(w)
			}

			if err := writeFile(po.htmlPath, func(w io.Writer) error { return render.Chart(w, result) }); err != nil {
				return err
			}
			if err := writeFile(po.pngPath, func(w io.Writer) error { return render.PNG(w, result, cfg.Render.Scale) }); err != nil {
				return err
			}
			if err := writeFile(po.xlsxPath, func(w io.Writer) error { return utils.WriteLayoutExcel(w, result) }); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&po.room.Length, "length", 0, "room length in meters (3-15)")
	f.Float64Var(&po.room.Width, "width", 0, "room width in meters (3-15)")
	f.IntVar(&po.room.Budget, "budget", 0, "budget in currency units (500-10000)")
	f.StringVar(&po.htmlPath, "html", "", "also write an HTML chart to this file")
	f.StringVar(&po.pngPath, "png", "", "also write a PNG floor plan to this file")
	f.StringVar(&po.xlsxPath, "xlsx", "", "also write an .xlsx export to this file")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the furniture catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, provider, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			items, err := provider.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCATEGORY\tWIDTH\tDEPTH\tPRICE")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%d\n", it.Name, it.Category, it.Width, it.Depth, it.Price)
			}
			return tw.Flush()
		},
	}
}

// writeFile is a no-op for an empty path.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
