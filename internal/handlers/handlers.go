package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"storefront/internal/catalog"
	"storefront/internal/metrics"
	"storefront/internal/render"
	"storefront/internal/types"
	"storefront/web"
)

// Handler serves pages and read-only catalog data from a catalog store
type Handler struct {
	store *catalog.Store
	opts  render.Options
}

// New creates a handler set
func New(store *catalog.Store, opts render.Options) *Handler {
	return &Handler{store: store, opts: opts}
}

// PageHandler renders the page named by the slug URL parameter, or the index page
func (h *Handler) PageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		slug = types.IndexSlug
	}

	if page, ok := h.store.Get().Page(slug); ok {
		renderComponent(w, r, slug, http.StatusOK, render.Page(page, h.opts))
		return
	}

	logrus.WithField("slug", slug).Debug("Page not found")
	renderComponent(w, r, "not_found", http.StatusNotFound, render.NotFound(h.opts))
}

// renderComponent writes component with status and records the status
// actually sent, which is 500 when rendering fails
func renderComponent(w http.ResponseWriter, r *http.Request, label string, status int, component templ.Component) {
	start := time.Now()

	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			logrus.WithError(err).WithField("page", label).Error("Failed to render page")
			status = http.StatusInternalServerError
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Internal server error", status)
			})
		}),
	).ServeHTTP(w, r)

	metrics.ObservePageRender(label, status, time.Since(start))
}

// StylesHandler serves the CSS styles
func StylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(web.StylesCSS)
}

// CatalogHandler returns the whole catalog as JSON
func (h *Handler) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, h.store.Get())
}

// ProductHandler returns a single product as JSON
func (h *Handler) ProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := h.store.Get().Product(id)
	if !ok {
		sendError(w, "Product not found", http.StatusNotFound)
		return
	}
	sendJSON(w, http.StatusOK, p)
}

// OutboundHandler counts a click and redirects to the product's payment
// link, or to the contact link for the reserved contact id
func (h *Handler) OutboundHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c := h.store.Get()

	var target string
	if id == types.ContactID {
		target = contactURL(c, r.URL.Query().Get("page"))
	} else if p, ok := c.Product(id); ok {
		target = p.Link
	}

	if target == "" {
		sendError(w, "Unknown link", http.StatusNotFound)
		return
	}

	metrics.IncOutboundClick(id)
	logrus.WithFields(logrus.Fields{
		"id":     id,
		"target": target,
	}).Info("Outbound redirect")

	http.Redirect(w, r, target, http.StatusFound)
}

// contactURL returns the contact link of the given page, falling back to
// the catalog-wide one
func contactURL(c *types.Catalog, slug string) string {
	if page, ok := c.Page(slug); ok && page.Contact != nil && page.Contact.URL != "" {
		return page.Contact.URL
	}
	return c.ContactURL
}

// HealthHandler reports liveness and the size of the loaded catalog
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"products": len(h.store.Get().Products()),
		"version":  h.store.Version(),
	})
}

// sendJSON writes v as a JSON response
func sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// sendError sends an error response
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, types.Response{
		Success: false,
		Message: message,
	})
}
