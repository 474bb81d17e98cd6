// Package log holds the app's file loggers. The TUI owns stdout, so
// everything goes to files in the temp directory. With PANELDECK_DEBUG=1 a
// separate debug log also receives layout, drag and input traces and render
// timings.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

var (
	InfoLog    *charmlog.Logger
	WarningLog *charmlog.Logger
	ErrorLog   *charmlog.Logger
)

var logFileName = filepath.Join(os.TempDir(), "paneldeck.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up logging.
// defer Close() after calling this function. It sets the log output to a file in the
// temp directory, since the TUI owns stdout.
func Initialize(debug bool) {
	var out io.Writer = io.Discard
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %s\n", err)
	} else {
		out = f
		globalLogFile = f
	}

	base := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		ReportCaller:    debug,
		TimeFormat:      "2006/01/02 15:04:05",
	})

	InfoLog = base.WithPrefix("INFO")
	WarningLog = base.WithPrefix("WARNING")
	ErrorLog = base.WithPrefix("ERROR")

	InitDebug()
}

// Close flushes the log file. Safe to call when Initialize failed to open it.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Println("wrote logs to " + logFileName)
}

func init() {
	// Usable zero state so packages can log from tests without Initialize.
	discard := charmlog.New(io.Discard)
	InfoLog = discard
	WarningLog = discard
	ErrorLog = discard
}
