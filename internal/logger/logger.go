package logger

import (
	"github.com/fatih/color" // Colored console output
)

// Colorized printing functions for the different log levels.
// These are package-level variables holding functions that behave like
// fmt.Printf, but with text colored appropriately for the log level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is assigned during Init based on the debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger, enabling or disabling debug logging.
// When disabled, Debug is a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Safe default so packages can log debug messages even if Init was
	// never called (e.g. from tests).
	Init(false)
}
