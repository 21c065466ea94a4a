package watcher

import "time"

// DefaultSettleDelay is how long a file must stay unchanged before a change is reported.
const DefaultSettleDelay = 500 * time.Millisecond

// Options configures the file watcher behavior.
type Options struct {
	// SettleDelay is the quiet period after the last write. Size and mtime must
	// be unchanged across it.
	SettleDelay time.Duration
}

// setDefaults applies default values to unset options.
func (o *Options) setDefaults() {
	if o.SettleDelay <= 0 {
		o.SettleDelay = DefaultSettleDelay
	}
}
