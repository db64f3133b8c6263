// Package metrics exposes the dealerpost Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dealerpost"

var (
	// SyncsTotal counts catalog syncs by result ("success" or "error").
	SyncsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_syncs_total",
		Help:      "Catalog sync runs by result.",
	}, []string{"result"})

	ProductsSynced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_synced_total",
		Help:      "Products written by catalog syncs, by action.",
	}, []string{"action"})

	PostsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_generated_total",
		Help:      "Drafts created, by platform and drafting source.",
	}, []string{"platform", "source"})

	PublishesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_publishes_total",
		Help:      "Publish attempts by platform and result.",
	}, []string{"platform", "result"})

	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Posts deleted.",
	})

	MetricSnapshots = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "metric_snapshots_total",
		Help:      "Engagement snapshots collected, by result.",
	}, []string{"result"})
)

// Result labels a counter by whether err is nil.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
