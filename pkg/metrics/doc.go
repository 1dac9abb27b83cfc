// Package metrics exposes diagnostics-session state to Prometheus.
//
// A Collector turns one oslg session into three gauges: the number of stored
// entries per severity level, the session status (the worst severity logged
// so far), and the session's minimum stored severity. Each collector labels
// its metrics with a session name, so independent sessions (one per worker,
// per model run) can share the one scrape registry. The Metrics host wraps
// a Prometheus registry and an HTTP server for scraping, following the same
// lifecycle conventions as the rest of this module.
//
// Basic Usage:
//
//	import (
//		"github.com/buildsim/oslg/pkg/metrics"
//		"github.com/buildsim/oslg/pkg/oslg"
//	)
//
//	log := oslg.New(oslg.Config{Level: "info"})
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "envelope-audit",
//	})
//	m.Observe("audit", log)
//
//	go m.Server.ListenAndServe()
//
// FX Module Integration:
//
//	app := fx.New(
//		oslg.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", ServiceName: "envelope-audit"}
//		}),
//	)
//	app.Run()
//
// The fx module registers the provided session automatically and manages
// server startup and graceful shutdown.
package metrics
