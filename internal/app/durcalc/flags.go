package durcalc

import (
	"strconv"

	kingpin "github.com/alecthomas/kingpin/v2" // Command line flag parsing.

	"github.com/mintel/duration/internal/pkg/cmd" // Common command line app tools.
	"github.com/mintel/duration/pkg/duration"
)

const (
	defaultLogLevel = "WARN"
	defaultSteps    = 10
)

var (
	defaultBackoffInitial = duration.MustFromMillis(500)
	defaultBackoffMax     = duration.MustFromSecs(60)
)

// Flags holds command line flags for the
// durcalc App.
type Flags struct {
	*cmd.LoggingFlags

	Metrics bool // Print gathered metrics to stderr on exit.

	ShowCmd *kingpin.CmdClause
	Show    struct {
		Value float64       // Magnitude to build a duration from.
		Unit  duration.Unit // Unit of Value.
	}

	ScheduleCmd *kingpin.CmdClause
	Schedule    struct {
		Steps int // Number of intervals to print.

		*cmd.BackoffFlags
	}

	AlignCmd *kingpin.CmdClause
	Align    struct {
		Value float64       // Magnitude of the alignment interval.
		Unit  duration.Unit // Unit of Value.
	}
}

// NewFlags returns a new Flags.
func NewFlags(app *kingpin.Application) *Flags {
	var f Flags

	f.LoggingFlags = cmd.NewLoggingFlags(app, defaultLogLevel)

	app.Flag("metrics", "Print Prometheus metrics to stderr when the command finishes.").
		BoolVar(&f.Metrics)

	f.ShowCmd = app.Command("show", "Display a duration and its value in every unit.")

	f.ShowCmd.Arg("value", "Magnitude of the duration.").
		Required().
		Float64Var(&f.Show.Value)

	duration.UnitEnumVar(
		f.ShowCmd.Flag("unit", "Unit of the magnitude.").
			Short('u').
			HintOptions(duration.UnitSymbols()...).
			Default(duration.Second.Symbol()),
		&f.Show.Unit,
	)

	f.ScheduleCmd = app.Command("schedule", "Display the intervals of an exponential backoff policy.")

	f.ScheduleCmd.Flag("steps", "Number of intervals to display.").
		Short('n').
		Default(strconv.Itoa(defaultSteps)).
		IntVar(&f.Schedule.Steps)

	f.Schedule.BackoffFlags = cmd.NewBackoffFlags(f.ScheduleCmd, defaultBackoffInitial, defaultBackoffMax)

	f.AlignCmd = app.Command("align", "Display the multiples of a duration around the current time.")

	f.AlignCmd.Arg("value", "Magnitude of the alignment interval.").
		Required().
		Float64Var(&f.Align.Value)

	duration.UnitEnumVar(
		f.AlignCmd.Flag("unit", "Unit of the magnitude.").
			Short('u').
			HintOptions(duration.UnitSymbols()...).
			Default(duration.Second.Symbol()),
		&f.Align.Unit,
	)

	return &f
}
