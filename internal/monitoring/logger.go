// Package monitoring holds the diagnostic logging seam shared by the readers,
// the record locator and the plotting code.
package monitoring

import "log"

// Logf reports diagnostics that the caller can act on, such as a lookup that
// ran out of indices or a day with missing observations. It defaults to
// log.Printf; the CLI replaces it with a structured logger.
var Logf func(format string, v ...interface{}) = log.Printf

// Debugf reports per-record detail. It is muted unless SetDebugLogger is called.
var Debugf func(format string, v ...interface{}) = func(string, ...interface{}) {}

// SetLogger replaces Logf. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetDebugLogger replaces Debugf. Passing nil mutes debug output again.
func SetDebugLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Debugf = func(string, ...interface{}) {}
		return
	}
	Debugf = f
}
