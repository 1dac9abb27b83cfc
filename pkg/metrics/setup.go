package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/buildsim/oslg/pkg/oslg"
)

// Metrics hosts the Prometheus registry and scrape server for one or more
// observed diagnostics sessions.
type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	registerer  prometheus.Registerer
	serviceName string
}

// NewMetrics builds a registry and scrape server from configuration. All
// registered metrics carry a "service" label with cfg.ServiceName.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	return &Metrics{
		Server:      server,
		Registry:    registry,
		registerer:  wrappedRegistry,
		serviceName: cfg.ServiceName,
	}
}

// Observe registers a diagnostics session with the scrape registry under a
// distinguishing name. The session's entry counts, status and minimum level
// become visible to Prometheus on the next scrape, labeled with the name.
// Registering the same name twice fails.
func (m *Metrics) Observe(name string, l *oslg.Logger) error {
	return m.registerer.Register(NewCollector(name, l))
}
