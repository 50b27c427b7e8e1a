package easel

import (
	"fmt"
	"os"
	"time"
)

// debugging gates diagnostic output and the pod bounds overlay. The core
// is single threaded, so a plain flag suffices.
var debugging bool

// SetDebug toggles diagnostic logging and the pod bounds overlay.
func SetDebug(on bool) {
	debugging = on
}

// Debug reports whether debugging is on.
func Debug() bool {
	return debugging
}

// debugf prints a diagnostic line to stderr when debugging is on.
func debugf(format string, args ...any) {
	if !debugging {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}

// errorf prints an error line to stderr. Not gated on the debug flag;
// errors surface even in release builds.
func errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[easel] error: "+format+"\n", args...)
}

// tickStats holds per-tick phase timings and volume counters. Collected
// every tick, logged only when debugging is on.
type tickStats struct {
	dispatchTime time.Duration
	updateTime   time.Duration
	layoutTime   time.Duration
	paintTime    time.Duration
	renderTime   time.Duration
	eventCount   int
	effectCount  int
}

// log prints the tick timings to stderr.
func (s tickStats) log() {
	total := s.dispatchTime + s.updateTime + s.layoutTime + s.paintTime + s.renderTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] dispatch: %v | update: %v | layout: %v | paint: %v | render: %v | total: %v\n",
		s.dispatchTime, s.updateTime, s.layoutTime, s.paintTime, s.renderTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] events: %d | effects: %d\n",
		s.eventCount, s.effectCount)
}
