package quill

// tickStats holds per-tick scheduler counts. Only reported when the
// scheduler's debug flag is set.
type tickStats struct {
	stepped   int
	completed int
	cancelled int
	active    int
}

// debugLog reports tick stats on the package logger.
func (s *Scheduler) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	logf().Debug("quill: tween tick",
		"stepped", stats.stepped,
		"completed", stats.completed,
		"cancelled", stats.cancelled,
		"active", stats.active,
		"registered", len(s.reg.known))
}
