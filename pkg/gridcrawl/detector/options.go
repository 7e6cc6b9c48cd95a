package detector

import (
	"fmt"

	"github.com/ukaji3/gridcrawl-go/internal/metrics"
	"go.uber.org/zap"
)

// StaggerPolicy selects how a stair-step header deeper than one row is handled.
type StaggerPolicy string

const (
	// StaggerFlag resolves one-row stair-steps only. A deeper stair-step
	// starts a new grid and is reported in CrawlStats.UnresolvedStaggers.
	StaggerFlag StaggerPolicy = "flag"
	// StaggerStrict fails the crawl with a StaggerError on a deeper stair-step.
	StaggerStrict StaggerPolicy = "strict"
	// StaggerResolve repeats the migration upward through every stepped row.
	StaggerResolve StaggerPolicy = "resolve"
)

// ParseStaggerPolicy converts a policy name to a StaggerPolicy.
func ParseStaggerPolicy(s string) (StaggerPolicy, error) {
	switch p := StaggerPolicy(s); p {
	case StaggerFlag, StaggerStrict, StaggerResolve:
		return p, nil
	case "":
		return StaggerFlag, nil
	default:
		return "", fmt.Errorf("invalid stagger policy: %s (must be flag, strict, or resolve)", s)
	}
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics sets the collector that receives crawl events.
func WithMetrics(m *metrics.Collector) Option {
	return func(d *Detector) {
		d.metrics = m
	}
}

// WithStaggerPolicy sets the deep stair-step policy. An empty policy
// keeps StaggerFlag.
func WithStaggerPolicy(p StaggerPolicy) Option {
	return func(d *Detector) {
		if p != "" {
			d.policy = p
		}
	}
}
