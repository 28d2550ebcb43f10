package durcalc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	kingpin "github.com/alecthomas/kingpin/v2"       // Command line flag parsing.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
	"github.com/prometheus/common/expfmt"            // Prometheus text format.
	"go.uber.org/zap"                                // Logging.

	"github.com/mintel/duration/internal/pkg/cmd"
	"github.com/mintel/duration/pkg/ctxlog"
	"github.com/mintel/duration/pkg/duration"
	"github.com/mintel/duration/pkg/interval"
	"github.com/mintel/duration/pkg/metrics"
)

const (
	Name  = "durcalc"
	Usage = "Build, convert, and display durations and backoff schedules."
)

// App holds application state.
type App struct {
	*kingpin.Application

	flags *Flags           // Command line flags
	inst  *Instrumentation // App-specific Prometheus metrics
	out   io.Writer        // Where results are printed

	now func() time.Time // Clock used by the align command
}

// NewApp returns a new App that prints results to out
// and registers its metrics with r.
func NewApp(out io.Writer, r prometheus.Registerer) (*App, error) {
	app := &App{
		Application: kingpin.New(filepath.Base(os.Args[0]), Usage),
		inst:        NewInstrumentation(Name),
		out:         out,
		now:         time.Now,
	}
	app.flags = NewFlags(app.Application)
	if err := r.Register(app.inst); err != nil {
		return nil, err
	}

	app.flags.ScheduleCmd.Validate(func(*kingpin.CmdClause) error {
		if app.flags.Schedule.Steps < 0 {
			return fmt.Errorf("--steps must be >= 0, got %d", app.flags.Schedule.Steps)
		}
		return nil
	})

	return app, nil
}

// Main is the main method of App and should be called
// in main.main() after flag parsing. If requested, metrics
// gathered from g are written to stderr once the command finishes.
func (app *App) Main(command string, g prometheus.Gatherer) {
	logger := app.flags.NewLogger().Named(Name)
	defer func() { _ = logger.Sync() }()
	defer cmd.SetGlobalLogger(logger)()

	ctx := ctxlog.WithLogger(context.Background(), logger)
	if err := app.Run(ctx, command); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		app.Fatalf("%s", err)
	}
	if app.flags.Metrics {
		if err := writeMetrics(os.Stderr, g); err != nil {
			logger.Error("error writing metrics", zap.Error(err))
		}
	}
}

// writeMetrics writes every metric family in g to w
// in the Prometheus text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Run runs the parsed command and records how long it took.
func (app *App) Run(ctx context.Context, command string) error {
	timer := metrics.NewTimer(app.inst.CommandSeconds.MustCurryWith(prometheus.Labels{labelCommand: command}))
	err := app.run(ctxlog.WithName(ctx, command), command)
	elapsed := timer.ObserveErr(err)
	ctxlog.L(ctx).Debug("command finished",
		zap.String("command", command),
		ctxlog.Duration("elapsed", elapsed),
		zap.Error(err))
	return err
}

func (app *App) run(ctx context.Context, command string) error {
	switch command {
	case app.flags.ShowCmd.FullCommand():
		return app.show(ctx)
	case app.flags.ScheduleCmd.FullCommand():
		return app.schedule(ctx)
	case app.flags.AlignCmd.FullCommand():
		return app.align(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (app *App) show(ctx context.Context) error {
	f := app.flags.Show
	d, err := f.Unit.From(f.Value)
	if err != nil {
		return err
	}
	ctxlog.L(ctx).Debug("built duration",
		zap.Float64("value", f.Value),
		zap.Stringer("unit", f.Unit),
		ctxlog.Duration("duration", d))

	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, d)
	for _, u := range duration.Units {
		fmt.Fprintf(w, "%s\t%s\n", u, strconv.FormatFloat(u.In(d), 'f', -1, 64))
	}
	return w.Flush()
}

func (app *App) schedule(ctx context.Context) error {
	f := app.flags.Schedule
	b, err := f.Exponential()
	if err != nil {
		return err
	}
	steps := b.Schedule(f.Steps)
	ctxlog.L(ctx).Debug("computed backoff schedule",
		ctxlog.Duration("initial", b.Initial),
		ctxlog.Duration("max", b.Max),
		zap.Float64("multiplier", b.Multiplier),
		ctxlog.Durations("schedule", steps))

	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "step\tinterval\ttotal")
	total := duration.Zero
	for i, d := range steps {
		if total, err = total.Add(d); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		metrics.Observe(app.inst.ScheduleIntervals, d)
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, d, total)
	}
	return w.Flush()
}

func (app *App) align(ctx context.Context) error {
	f := app.flags.Align
	d, err := f.Unit.From(f.Value)
	if err != nil {
		return err
	}
	if d.IsZero() {
		return fmt.Errorf("alignment interval must be greater than zero: %w", duration.ErrInvalidRange)
	}

	now := app.now().UTC()
	next := interval.Next(now, d)
	wait := duration.FromStd(next.Sub(now))
	ctxlog.L(ctx).Debug("aligned time",
		ctxlog.Duration("interval", d),
		zap.Time("next", next),
		ctxlog.Duration("wait", wait))

	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "now\t%s\n", now.Format(time.RFC3339Nano))
	fmt.Fprintf(w, "aligned\t%t\n", interval.IsMultiple(now, d))
	fmt.Fprintf(w, "prev\t%s\n", interval.Prev(now, d).Format(time.RFC3339Nano))
	fmt.Fprintf(w, "next\t%s\n", next.Format(time.RFC3339Nano))
	fmt.Fprintf(w, "wait\t%s\n", wait)
	return w.Flush()
}
