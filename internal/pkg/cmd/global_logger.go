package cmd

import (
	"go.uber.org/zap" // Logging.
)

// SetGlobalLogger sets the zap global logger and redirects the
// standard library's package-global logger to it at the debug level.
// It returns a teardown function to reset the global loggers.
func SetGlobalLogger(logger *zap.Logger) func() {
	resetGlobals := zap.ReplaceGlobals(logger)
	resetStdLog, err := zap.RedirectStdLogAt(logger, zap.DebugLevel)
	if err != nil {
		panic(err)
	}
	return func() {
		resetStdLog()
		resetGlobals()
	}
}
