//go:build !debug
// +build !debug

package spheretrace

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
