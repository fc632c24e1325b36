package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/cloudx/internal/config"
	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/export"
	"github.com/nfrund/cloudx/internal/landing"
	"github.com/nfrund/cloudx/internal/reveal"
)

type renderOptions struct {
	out         string
	contentFile string
	noReveal    bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	c := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page",
		Long: `Render the landing page with the configured content and links.

Without --out the document is written to stdout. An --out ending in .html
writes that single file; any other --out is treated as a directory and
receives index.html plus the static assets, ready to be served as is.

The output does not need the server: the menu and FAQ use native
disclosure elements instead of htmx fragments.

Examples:
  cloudx-cli render > index.html
  cloudx-cli render --out dist
  cloudx-cli render --out preview.html --no-reveal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	c.Flags().StringVarP(&opts.out, "out", "o", "", "output file (.html) or directory")
	c.Flags().StringVar(&opts.contentFile, "content", "", "content override file (defaults to CONTENT_FILE)")
	c.Flags().BoolVar(&opts.noReveal, "no-reveal", false, "render every section visible, without the scroll animation")
	return c
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg := config.FromEnv()
	path := opts.contentFile
	if path == "" {
		path = cfg.GetContentFile()
	}
	cat, err := content.Load(appFs, path)
	if err != nil {
		return err
	}

	var obs reveal.Observer = reveal.Deferred{}
	if opts.noReveal {
		obs = nil
	}
	page := landing.NewPage(cat, landing.Options{
		FormURL:  cfg.GetFormURL(),
		LogoURL:  cfg.GetLogoURL(),
		BaseURL:  cfg.GetAppBaseURL(),
		Observer: obs,
		Static:   true,
	})
	defer page.Close()

	switch {
	case opts.out == "":
		return page.Render(cmd.OutOrStdout())
	case strings.EqualFold(filepath.Ext(opts.out), ".html"):
		f, err := appFs.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.out, err)
		}
		defer f.Close()
		if err := page.Render(f); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", opts.out)
		return nil
	default:
		if err := export.WriteSite(appFs, opts.out, page); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote site to %s\n", opts.out)
		return nil
	}
}

