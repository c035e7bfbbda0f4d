//go:build debug
// +build debug

package spheretrace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var debugOut io.Writer = os.Stdout

func DebugLog(format string, args ...interface{}) {
	fmt.Fprintf(debugOut, "[DEBUG] "+format+"\n", args...)
}

// seen holds the formats already printed by DebugLogOnce.
var seen sync.Map

// DebugLogOnce prints a message the first time its format is used, so a
// per-ray notice shows up once per run instead of once per pixel.
func DebugLogOnce(format string, args ...interface{}) {
	if _, dup := seen.LoadOrStore(format, struct{}{}); dup {
		return
	}
	DebugLog(format, args...)
}
