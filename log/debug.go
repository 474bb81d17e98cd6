package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

// EnvDebug turns on trace logging and render profiling when set to "1".
const EnvDebug = "PANELDECK_DEBUG"

var (
	DebugEnabled bool
	DebugLog     *charmlog.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "paneldeck-debug.log")

// InitDebug opens the debug log when EnvDebug is set. Otherwise DebugLog
// discards everything.
func InitDebug() {
	DebugEnabled = false
	DebugLog = charmlog.New(io.Discard)
	if os.Getenv(EnvDebug) != "1" {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	DebugEnabled = true
	debugLogFile = f
	DebugLog = charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000000",
		Level:           charmlog.DebugLevel,
	})
	DebugLog.Debug("debug logging enabled", "file", debugLogFileName)
}

// CloseDebug closes the debug log file, if one is open.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Println("wrote debug logs to " + debugLogFileName)
}

// tracer returns a printf-style logger that tags each line with area and is
// silent unless debug logging is on.
func tracer(area string) func(format string, v ...any) {
	return func(format string, v ...any) {
		if DebugEnabled && DebugLog != nil {
			DebugLog.Debug(fmt.Sprintf(format, v...), "area", area)
		}
	}
}

var (
	// LayoutTrace logs splitter and layout computations.
	LayoutTrace = tracer("layout")
	// DragTrace logs tab drag-and-drop state transitions.
	DragTrace = tracer("drag")
	// InputTrace logs pointer and key routing.
	InputTrace = tracer("input")
)
