// Package oslg provides session-scoped diagnostics for building-simulation
// tooling.
//
// Unlike a conventional logger, oslg tracks an overall session status: the
// running maximum severity of everything logged since the last reset. Host
// applications run a batch of model operations, then inspect the status and
// the accumulated entries to decide whether the batch succeeded, partially
// succeeded, or failed. Individual helpers never raise errors; they log a
// diagnostic and return a caller-chosen fallback, so they can be embedded
// inline as safe-default expressions.
//
// Core Features:
//   - Ordered severity levels (Debug, Info, Warn, Error, Fatal)
//   - Monotone session status: the worst severity logged so far
//   - In-memory, insertion-ordered entry store, gated by a minimum level
//   - Template builders for recurring diagnostics (invalid argument,
//     type mismatch, missing key, empty/zero/negative value) that always
//     return the caller's fallback value
//   - Optional structured mirror of stored entries via Zap
//   - Trace/span correlation of mirrored entries via OpenTelemetry contexts
//   - Integration with the fx dependency injection framework
//
// Basic Usage:
//
//	import "github.com/buildsim/oslg/pkg/oslg"
//
//	log := oslg.New(oslg.Config{Level: "info"})
//
//	// Plain logging. The return value is the session status.
//	log.Log(oslg.Warn, "gross roof area < net roof area")
//
//	// Inline safe-default expression: logs a diagnostic and evaluates
//	// to the fallback (0.0 here) in every case.
//	ratio := oslg.Negative(log, "window/wall ratio", "glazingRatio", oslg.Error, 0.0)
//
//	// After a batch, report once.
//	if log.IsError() {
//		for _, e := range log.Logs() {
//			fmt.Println(e.Level, e.Message)
//		}
//	}
//	fmt.Println(oslg.StatusMessage(log.Status()))
//
// FX Module Integration:
//
// This package provides an fx module for applications using the fx
// dependency injection framework:
//
//	app := fx.New(
//		oslg.FXModule,
//		fx.Provide(func() oslg.Config {
//			return oslg.Config{Level: "debug", Console: true}
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// Configuration:
//
// The session can be configured via environment variables:
//
//	OSLG_LEVEL=debug        # Minimum stored severity
//	OSLG_TRIM_LENGTH=60     # Maximum stored message length
//	OSLG_CONSOLE=true       # Mirror stored entries to stderr via Zap
//
// Failure Semantics:
//
// Nothing in this package returns an error or panics on bad input. Invalid
// arguments (out-of-range levels, blank identifiers, messages that are empty
// after trimming) degrade to silent no-ops that leave the session untouched.
// The session status and entry store are the only failure signals.
//
// Thread Safety:
//
// A Logger may be shared between goroutines; all methods serialize on an
// internal mutex. Independent sessions (one Logger per worker) need no
// coordination at all.
package oslg
