// Package metrics exposes prometheus counters for grid crawls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gridcrawl"

// Collector holds the crawl counters. A nil *Collector is valid and
// records nothing.
type Collector struct {
	crawls             *prometheus.CounterVec
	grids              prometheus.Counter
	migrations         prometheus.Counter
	indexFallbacks     prometheus.Counter
	readErrors         prometheus.Counter
	unresolvedStaggers prometheus.Counter
	duration           prometheus.Histogram
}

// NewCollector creates the counters and registers them on reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		crawls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crawls_total",
			Help:      "Sheet crawls by outcome.",
		}, []string{"outcome"}),
		grids: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grids_detected_total",
			Help:      "Grids detected across all crawls.",
		}),
		migrations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "header_migrations_total",
			Help:      "Stair-step header migrations performed.",
		}),
		indexFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_fallbacks_total",
			Help:      "Vertical lookups that missed the origins index and started a new grid.",
		}),
		readErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cell_read_errors_total",
			Help:      "Cell reads that failed and were treated as empty.",
		}),
		unresolvedStaggers: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_staggers_total",
			Help:      "Stair-step layouts deeper than one row that were not resolved.",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "crawl_duration_seconds",
			Help:      "Time spent crawling one sheet.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
}

// CrawlFinished records one crawl with its outcome ("ok" or "error").
func (c *Collector) CrawlFinished(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.crawls.WithLabelValues(outcome).Inc()
	c.duration.Observe(elapsed.Seconds())
}

// GridsDetected adds n detected grids.
func (c *Collector) GridsDetected(n int) {
	if c == nil {
		return
	}
	c.grids.Add(float64(n))
}

// Migration records a header migration.
func (c *Collector) Migration() {
	if c == nil {
		return
	}
	c.migrations.Inc()
}

// IndexFallback records an origins index miss.
func (c *Collector) IndexFallback() {
	if c == nil {
		return
	}
	c.indexFallbacks.Inc()
}

// ReadError records a failed cell read.
func (c *Collector) ReadError() {
	if c == nil {
		return
	}
	c.readErrors.Inc()
}

// UnresolvedStagger records a stagger that was left unresolved.
func (c *Collector) UnresolvedStagger() {
	if c == nil {
		return
	}
	c.unresolvedStaggers.Inc()
}
