package providers

import "time"

const (
	// watcherStopTimeout bounds how long shutdown waits for the watcher goroutine.
	watcherStopTimeout = 5 * time.Second
)
