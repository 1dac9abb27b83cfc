package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/buildsim/oslg/pkg/oslg"
)

// Collector exposes one diagnostics session to Prometheus. Values are read
// from the session at collection time; the collector holds no state of its
// own, so session resets are reflected on the next scrape. Every metric
// carries a "session" label so several sessions can share one registry.
type Collector struct {
	logger  *oslg.Logger
	entries *prometheus.Desc
	status  *prometheus.Desc
	level   *prometheus.Desc
}

// NewCollector builds a Collector over a session. The name distinguishes
// this session's metrics from other sessions on the same registry.
func NewCollector(name string, l *oslg.Logger) *Collector {
	constLabels := prometheus.Labels{"session": name}

	return &Collector{
		logger: l,
		entries: prometheus.NewDesc(
			"oslg_entries",
			"Number of stored diagnostic entries by severity level.",
			[]string{"level"},
			constLabels,
		),
		status: prometheus.NewDesc(
			"oslg_status",
			"Session status: the maximum severity stored since the last reset (0 = untouched).",
			nil,
			constLabels,
		),
		level: prometheus.NewDesc(
			"oslg_level",
			"Minimum severity a log call must carry to be stored.",
			nil,
			constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.status
	ch <- c.level
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[oslg.Level]int)
	for _, e := range c.logger.Logs() {
		counts[e.Level]++
	}

	for lvl := oslg.Debug; lvl <= oslg.Fatal; lvl++ {
		ch <- prometheus.MustNewConstMetric(
			c.entries,
			prometheus.GaugeValue,
			float64(counts[lvl]),
			lvl.String(),
		)
	}

	ch <- prometheus.MustNewConstMetric(c.status, prometheus.GaugeValue, float64(c.logger.Status()))
	ch <- prometheus.MustNewConstMetric(c.level, prometheus.GaugeValue, float64(c.logger.Level()))
}
