package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.CrawlFinished("ok", 2*time.Millisecond)
	c.CrawlFinished("error", time.Millisecond)
	c.GridsDetected(3)
	c.Migration()
	c.IndexFallback()
	c.ReadError()
	c.ReadError()
	c.UnresolvedStagger()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.crawls.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.crawls.WithLabelValues("error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.grids))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.migrations))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.indexFallbacks))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.readErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.unresolvedStaggers))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.CrawlFinished("ok", time.Second)
		c.GridsDetected(1)
		c.Migration()
		c.IndexFallback()
		c.ReadError()
		c.UnresolvedStagger()
	})
}
