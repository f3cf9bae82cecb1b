// Package settings provides numerical-mode configuration for lazy operators.
//
// A Settings value is handed to an operator at construction and consulted on
// every query; there is no process-wide state. Scoped helpers flip a flag
// and return a restore closure for defer, so a mode change cannot leak past
// the call that made it:
//
//	restore := cfg.ScopedFastLogProb(false)
//	defer restore()
package settings

// Settings holds the numerical-mode flags consulted by lazy operators.
//
// Settings values are not synchronized. A value must not be mutated,
// directly or through a scoped override, while another goroutine reads it.
// Give each concurrent computation its own Settings, or share one only
// while no operation that scopes it is in flight.
type Settings struct {
	debug       bool
	fastLogProb bool
}

// Default returns a fresh Settings with the default modes: debug checks
// enabled, fast log-probability approximations disabled.
func Default() *Settings {
	return &Settings{debug: true}
}

// Debug reports whether expensive structural validation runs at
// construction time.
func (s *Settings) Debug() bool {
	return s.debug
}

// FastLogProb reports whether quadratic-form and log-determinant queries
// may take the fast approximate path instead of an exact factor-based one.
func (s *Settings) FastLogProb() bool {
	return s.fastLogProb
}

// SetDebug sets the debug flag.
func (s *Settings) SetDebug(v bool) {
	s.debug = v
}

// SetFastLogProb sets the fast log-probability flag.
func (s *Settings) SetFastLogProb(v bool) {
	s.fastLogProb = v
}

// ScopedDebug sets the debug flag and returns a closure that restores the
// previous value. Call the closure with defer so restoration runs on every
// exit path, including panics.
//
//	defer cfg.ScopedDebug(false)()
func (s *Settings) ScopedDebug(v bool) func() {
	prev := s.debug
	s.debug = v
	return func() { s.debug = prev }
}

// ScopedFastLogProb sets the fast log-probability flag and returns a
// closure that restores the previous value. Call the closure with defer so
// restoration runs on every exit path, including panics.
//
//	defer cfg.ScopedFastLogProb(false)()
func (s *Settings) ScopedFastLogProb(v bool) func() {
	prev := s.fastLogProb
	s.fastLogProb = v
	return func() { s.fastLogProb = prev }
}
