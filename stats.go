package schiavinato

import "sync/atomic"

// Stats holds in-process counters for Split/Recover activity, modeled
// on a lightweight atomic-counter metrics foundation: no persistence,
// no network export, just a point-in-time snapshot a host application
// can scrape into whatever observability stack it already runs.
type Stats struct {
	splitsPerformed     atomic.Int64
	recoveriesAttempted atomic.Int64
	recoveriesSucceeded atomic.Int64
	pathMismatches      atomic.Int64
}

// global is the package-level Stats instance Split and Recover record
// against. Callers read its counters via CurrentStats and zero them
// with ResetStats.
var global = &Stats{}

// StatsSnapshot is a point-in-time copy of every counter.
type StatsSnapshot struct {
	SplitsPerformed     int64
	RecoveriesAttempted int64
	RecoveriesSucceeded int64
	PathMismatches      int64
}

// CurrentStats returns a snapshot of the package-level counters
// accumulated since process start (or the last ResetStats call).
func CurrentStats() StatsSnapshot {
	return StatsSnapshot{
		SplitsPerformed:     global.splitsPerformed.Load(),
		RecoveriesAttempted: global.recoveriesAttempted.Load(),
		RecoveriesSucceeded: global.recoveriesSucceeded.Load(),
		PathMismatches:      global.pathMismatches.Load(),
	}
}

// ResetStats zeroes every counter. Intended for tests.
func ResetStats() {
	global.splitsPerformed.Store(0)
	global.recoveriesAttempted.Store(0)
	global.recoveriesSucceeded.Store(0)
	global.pathMismatches.Store(0)
}
