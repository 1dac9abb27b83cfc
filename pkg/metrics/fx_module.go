package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/buildsim/oslg/pkg/oslg"
)

// FXModule defines the Fx module for the metrics package. It provides the
// NewMetrics factory, registers the application's diagnostics session with
// the scrape registry, and manages startup and graceful shutdown of the
// Prometheus HTTP server.
//
// Dependencies required by this module:
//   - A metrics.Config instance in the dependency injection container
//   - An *oslg.Logger session (e.g. from oslg.FXModule)
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle registers the session with the scrape registry
// and manages the metrics server lifecycle.
//
//   - OnStart: launches the Prometheus HTTP server in a background goroutine.
//   - OnStop: gracefully shuts down the metrics server.
//
// Server failures surface as fatal entries on the observed session rather
// than terminating the process.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *oslg.Logger) error {
	if err := m.Observe("main", log); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Log(oslg.Fatal, "metrics server: "+err.Error())
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})

	return nil
}
