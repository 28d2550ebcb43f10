package durcalc

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
	dto "github.com/prometheus/client_model/go"      // Prometheus metric protobufs.
	"github.com/stretchr/testify/assert"             // Test assertions e.g. equality.
	"github.com/stretchr/testify/require"            // Test assertions that stop the test.
	"go.uber.org/zap"                                // Logging.
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mintel/duration/pkg/ctxlog"
	"github.com/mintel/duration/pkg/duration"
)

func newTestApp(t *testing.T, out *bytes.Buffer) (*App, *prometheus.Registry) {
	r := prometheus.NewRegistry()
	app, err := NewApp(out, r)
	require.NoError(t, err)
	return app, r
}

func runApp(t *testing.T, app *App, args ...string) (*observer.ObservedLogs, error) {
	command, err := app.Parse(args)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ctxlog.WithLogger(context.Background(), zap.New(core))
	return logs, app.Run(ctx, command)
}

func run(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	var out bytes.Buffer
	app, _ := newTestApp(t, &out)
	logs, err := runApp(t, app, args...)
	return out.String(), logs, err
}

func gatherFamily(t *testing.T, r *prometheus.Registry, name string) *dto.MetricFamily {
	mfs, err := r.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	require.Failf(t, "metric family not found", "%s", name)
	return nil
}

func TestApp_show(t *testing.T) {
	out, logs, err := run(t, "show", "1500", "--unit", "ms")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"1.5s\n"+
		"hours         0.0004166666666666667\n"+
		"minutes       0.025\n"+
		"seconds       1.5\n"+
		"milliseconds  1500\n"+
		"microseconds  1500000\n"+
		"nanoseconds   1500000000\n",
		out)

	built := logs.FilterMessage("built duration").All()
	if assert.Len(t, built, 1) {
		entry := built[0]
		assert.Equal(t, "show", entry.LoggerName)
		assert.Equal(t, "1.5s", entry.ContextMap()["duration"].(map[string]interface{})["display"])
	}
	assert.Equal(t, 1, logs.FilterMessage("command finished").Len())
}

func TestApp_show_defaultUnit(t *testing.T) {
	out, _, err := run(t, "show", "3600")
	require.NoError(t, err)
	assert.Contains(t, out, "1h\n")
}

func TestApp_show_invalid(t *testing.T) {
	_, _, err := run(t, "show", "NaN")
	assert.ErrorIs(t, err, duration.ErrInvalidDuration)
}

func TestApp_schedule(t *testing.T) {
	out, _, err := run(t, "schedule",
		"--steps", "5",
		"--backoff.initial.millis", "250",
		"--backoff.max.secs", "1",
		"--backoff.multiplier", "2",
	)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"step  interval  total\n"+
		"1     250ms     250ms\n"+
		"2     500ms     750ms\n"+
		"3     1s        1.75s\n"+
		"4     1s        2.75s\n"+
		"5     1s        3.75s\n",
		out)
}

func TestApp_schedule_metrics(t *testing.T) {
	var out bytes.Buffer
	app, r := newTestApp(t, &out)
	_, err := runApp(t, app, "schedule",
		"--steps", "3",
		"--backoff.initial.millis", "250",
		"--backoff.max.secs", "1",
		"--backoff.multiplier", "2",
	)
	require.NoError(t, err)

	mf := gatherFamily(t, r, "durcalc_schedule_interval_seconds")
	h := mf.GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(3), h.GetSampleCount())
	assert.InDelta(t, 1.75, h.GetSampleSum(), 1e-9)

	mf = gatherFamily(t, r, "durcalc_command_duration_seconds")
	if assert.Len(t, mf.GetMetric(), 1) {
		m := mf.GetMetric()[0]
		labels := map[string]string{}
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		assert.Equal(t, map[string]string{"command": "schedule", "status": "success"}, labels)
		assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	}
}

func TestApp_show_invalidMetrics(t *testing.T) {
	app, r := newTestApp(t, &bytes.Buffer{})
	_, err := runApp(t, app, "show", "NaN")
	require.Error(t, err)

	mf := gatherFamily(t, r, "durcalc_command_duration_seconds")
	if assert.Len(t, mf.GetMetric(), 1) {
		for _, l := range mf.GetMetric()[0].GetLabel() {
			if l.GetName() == "status" {
				assert.Equal(t, "error", l.GetValue())
			}
		}
	}
}

func TestApp_schedule_invalid(t *testing.T) {
	_, _, err := run(t, "schedule",
		"--backoff.initial.millis", "5000",
		"--backoff.max.secs", "1",
	)
	assert.ErrorIs(t, err, duration.ErrInvalidRange)
}

func TestApp_schedule_negativeSteps(t *testing.T) {
	app, _ := newTestApp(t, &bytes.Buffer{})
	_, err := app.Parse([]string{"schedule", "--steps=-1"})
	assert.Error(t, err)
}

func TestApp_align(t *testing.T) {
	var out bytes.Buffer
	app, _ := newTestApp(t, &out)
	app.now = func() time.Time { return time.Date(2024, 1, 2, 12, 0, 30, 0, time.UTC) }

	_, err := runApp(t, app, "align", "1", "--unit", "m")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"now      2024-01-02T12:00:30Z\n"+
		"aligned  false\n"+
		"prev     2024-01-02T12:00:00Z\n"+
		"next     2024-01-02T12:01:00Z\n"+
		"wait     30s\n",
		out.String())
}

func TestApp_align_onMultiple(t *testing.T) {
	var out bytes.Buffer
	app, _ := newTestApp(t, &out)
	app.now = func() time.Time { return time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC) }

	_, err := runApp(t, app, "align", "1500", "--unit", "ms")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "aligned  true\n")
	assert.Contains(t, out.String(), "prev     2024-01-02T11:59:58.5Z\n")
	assert.Contains(t, out.String(), "next     2024-01-02T12:00:01.5Z\n")
	assert.Contains(t, out.String(), "wait     1.5s\n")
}

func TestApp_align_zero(t *testing.T) {
	_, _, err := run(t, "align", "0")
	assert.ErrorIs(t, err, duration.ErrInvalidRange)
}

func TestApp_duplicateRegistration(t *testing.T) {
	r := prometheus.NewRegistry()
	_, err := NewApp(&bytes.Buffer{}, r)
	require.NoError(t, err)
	_, err = NewApp(&bytes.Buffer{}, r)
	assert.Error(t, err)
}

func TestWriteMetrics(t *testing.T) {
	app, r := newTestApp(t, &bytes.Buffer{})
	_, err := runApp(t, app, "schedule", "--steps", "1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeMetrics(&buf, r))
	assert.Contains(t, buf.String(), "# TYPE durcalc_schedule_interval_seconds histogram\n")
	assert.Contains(t, buf.String(), "durcalc_schedule_interval_seconds_count 1\n")
}
