// Package gridcrawl detects the tables laid out on the sheets of an xlsx
// workbook.
package gridcrawl

import (
	"github.com/ukaji3/gridcrawl-go/internal/metrics"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/detector"
	"go.uber.org/zap"
)

// Options configures crawl behavior.
type Options struct {
	// Sheets names the sheets to crawl. Empty means every sheet.
	Sheets []string
	// Range restricts every crawled sheet to a cell range such as "A1:H40".
	Range string
	// UsePrintAreas restricts each sheet to its first print area, if it has one.
	// Range takes precedence.
	UsePrintAreas bool
	// Stagger selects how stair-step headers deeper than one row are handled.
	Stagger detector.StaggerPolicy
	// Logger receives crawl logs. If nil, logs are discarded.
	Logger *zap.Logger
	// Metrics receives crawl counters. May be nil.
	Metrics *metrics.Collector
}

// DefaultOptions returns default crawl options.
func DefaultOptions() Options {
	return Options{
		Stagger: detector.StaggerFlag,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) wantsSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == name {
			return true
		}
	}
	return false
}
