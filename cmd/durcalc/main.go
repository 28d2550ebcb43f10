package main

import (
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"       // Command line flag parsing.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/mintel/duration/internal/app/durcalc" // App implementation.
)

func main() {
	app, err := durcalc.NewApp(os.Stdout, prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	app.Main(command, prometheus.DefaultGatherer)
}
