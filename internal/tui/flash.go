package tui

import "time"

// Flash holds a transient status message shown until it expires. Only the
// event loop goroutine touches it.
type Flash struct {
	message string
	expires time.Time
}

// Set stores a message that expires after d.
func (f *Flash) Set(msg string, d time.Duration) {
	f.message = msg
	f.expires = time.Now().Add(d)
}

// Get returns the current message, or empty once expired.
func (f *Flash) Get() string {
	if time.Now().After(f.expires) {
		return ""
	}
	return f.message
}
