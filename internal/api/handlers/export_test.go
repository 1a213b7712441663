package handlers

import "time"

// SetPingPeriod shortens the websocket keepalive interval so tests can
// exercise pings without waiting out the production period.
func SetPingPeriod(d time.Duration) (restore func()) {
	old := pingPeriod
	pingPeriod = d
	return func() { pingPeriod = old }
}
