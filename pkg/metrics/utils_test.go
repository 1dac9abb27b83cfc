package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/buildsim/oslg/pkg/oslg"
)

func TestCollector_EntryCountsAndStatus(t *testing.T) {
	l := oslg.New(oslg.Config{Level: "debug"})
	l.Log(oslg.Warn, "first warning")
	l.Log(oslg.Warn, "second warning")
	l.Log(oslg.Error, "an error")

	expected := `
		# HELP oslg_entries Number of stored diagnostic entries by severity level.
		# TYPE oslg_entries gauge
		oslg_entries{level="DEBUG",session="run"} 0
		oslg_entries{level="INFO",session="run"} 0
		oslg_entries{level="WARNING",session="run"} 2
		oslg_entries{level="ERROR",session="run"} 1
		oslg_entries{level="FATAL",session="run"} 0
		# HELP oslg_status Session status: the maximum severity stored since the last reset (0 = untouched).
		# TYPE oslg_status gauge
		oslg_status{session="run"} 4
	`

	err := testutil.CollectAndCompare(NewCollector("run", l), strings.NewReader(expected), "oslg_entries", "oslg_status")
	require.NoError(t, err)
}

func TestCollector_ReflectsReset(t *testing.T) {
	l := oslg.New(oslg.Config{Level: "debug"})
	l.Log(oslg.Fatal, "fatal entry")
	l.Reset()

	expected := `
		# HELP oslg_entries Number of stored diagnostic entries by severity level.
		# TYPE oslg_entries gauge
		oslg_entries{level="DEBUG",session="run"} 0
		oslg_entries{level="INFO",session="run"} 0
		oslg_entries{level="WARNING",session="run"} 0
		oslg_entries{level="ERROR",session="run"} 0
		oslg_entries{level="FATAL",session="run"} 0
		# HELP oslg_status Session status: the maximum severity stored since the last reset (0 = untouched).
		# TYPE oslg_status gauge
		oslg_status{session="run"} 0
	`

	err := testutil.CollectAndCompare(NewCollector("run", l), strings.NewReader(expected), "oslg_entries", "oslg_status")
	require.NoError(t, err)
}

func TestObserve_ServiceLabel(t *testing.T) {
	l := oslg.New(oslg.Config{Level: "warning"})

	m := NewMetrics(Config{Address: "127.0.0.1:0", ServiceName: "envelope-audit"})
	require.NoError(t, m.Observe("run", l))

	expected := `
		# HELP oslg_level Minimum severity a log call must carry to be stored.
		# TYPE oslg_level gauge
		oslg_level{service="envelope-audit",session="run"} 3
	`

	err := testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "oslg_level")
	require.NoError(t, err)
}

func TestObserve_MultipleSessions(t *testing.T) {
	audit := oslg.New(oslg.Config{Level: "debug"})
	retrofit := oslg.New(oslg.Config{Level: "debug"})
	audit.Log(oslg.Error, "audit error")
	retrofit.Log(oslg.Info, "retrofit note")

	m := NewMetrics(Config{Address: "127.0.0.1:0", ServiceName: "sim"})
	require.NoError(t, m.Observe("audit", audit))
	require.NoError(t, m.Observe("retrofit", retrofit))

	expected := `
		# HELP oslg_status Session status: the maximum severity stored since the last reset (0 = untouched).
		# TYPE oslg_status gauge
		oslg_status{service="sim",session="audit"} 4
		oslg_status{service="sim",session="retrofit"} 2
	`

	err := testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "oslg_status")
	require.NoError(t, err)
}

func TestObserve_DuplicateNameFails(t *testing.T) {
	m := NewMetrics(Config{Address: "127.0.0.1:0"})

	require.NoError(t, m.Observe("run", oslg.New(oslg.Config{})))
	require.Error(t, m.Observe("run", oslg.New(oslg.Config{})))
}

func TestFXModuleLifecycle(t *testing.T) {
	var m *Metrics

	app := fx.New(
		oslg.FXModule,
		FXModule,
		fx.Provide(func() oslg.Config {
			return oslg.Config{Level: "debug"}
		}),
		fx.Provide(func() Config {
			return Config{Address: "127.0.0.1:0", ServiceName: "test"}
		}),
		fx.Populate(&m),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx))

	require.NotNil(t, m)

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Stop(stopCtx))
}
