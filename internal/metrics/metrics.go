package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRenders counts rendered pages by slug and HTTP status.
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "page_renders_total",
		Help:      "Total number of rendered pages",
	}, []string{"page", "status"})

	// PageRenderDuration tracks how long a page takes to render.
	PageRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "page_render_duration_seconds",
		Help:      "Time taken to render a page",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	}, []string{"page"})

	// OutboundClicks counts redirects to external payment and contact links.
	OutboundClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "outbound_clicks_total",
		Help:      "Total number of outbound link redirects",
	}, []string{"target"})

	// CatalogReloads counts catalog reload attempts by result.
	CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "catalog_reloads_total",
		Help:      "Total number of catalog reload attempts",
	}, []string{"result"})

	// LiveClients tracks connected live reload clients.
	LiveClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Name:      "live_reload_clients",
		Help:      "Number of connected live reload clients",
	})
)

// ObservePageRender records one page render.
func ObservePageRender(page string, status int, duration time.Duration) {
	PageRenders.WithLabelValues(page, statusClass(status)).Inc()
	PageRenderDuration.WithLabelValues(page).Observe(duration.Seconds())
}

// IncOutboundClick records a redirect to an external link.
func IncOutboundClick(target string) {
	OutboundClicks.WithLabelValues(target).Inc()
}

// IncCatalogReload records a catalog reload outcome.
func IncCatalogReload(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	CatalogReloads.WithLabelValues(result).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
