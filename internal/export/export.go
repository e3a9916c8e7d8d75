// Package export writes the catalog pages as static files that can be
// hosted without the server.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"

	"storefront/internal/render"
	"storefront/internal/types"
	"storefront/web"
)

// FileName returns the file a page is written to
func FileName(slug string) string {
	return slug + ".html"
}

// Site writes every page of c plus the stylesheet into dir and returns the
// written paths. Each file is replaced atomically.
func Site(ctx context.Context, c *types.Catalog, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	// Outbound links go straight to their destination; there is no server
	// to count them.
	opts := render.Options{}

	var written []string
	for _, page := range c.Pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(dir, FileName(page.Slug))
		if err := writeComponent(ctx, path, render.Page(page, opts)); err != nil {
			return written, fmt.Errorf("export page %s: %w", page.Slug, err)
		}
		written = append(written, path)

		logrus.WithFields(logrus.Fields{
			"page":  page.Slug,
			"path":  path,
			"cards": page.CardCount(),
		}).Info("Exported page")
	}

	stylesPath := filepath.Join(dir, "styles.css")
	if err := renameio.WriteFile(stylesPath, web.StylesCSS, 0o644); err != nil {
		return written, fmt.Errorf("export styles: %w", err)
	}
	written = append(written, stylesPath)

	return written, nil
}

func writeComponent(ctx context.Context, path string, c templ.Component) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logrus.WithError(err).Debug("Cleanup pending file")
		}
	}()

	if err := c.Render(ctx, pendingFile); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
