// Package constants centralizes shared tunables for the GameShelf client.
package constants

import "time"

// Event bus buffering
const (
	// EventBusDefaultBuffer is the per-subscriber channel buffer.
	// Sized so a slow renderer does not drop view updates under fast input.
	EventBusDefaultBuffer = 1000

	// EventBusMaxBuffer caps the per-subscriber buffer.
	EventBusMaxBuffer = 10000
)

// HTTP client timeouts
const (
	// HTTPIdleConnTimeout - how long to keep idle connections open
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPTLSHandshakeTimeout - timeout for TLS handshake
	HTTPTLSHandshakeTimeout = 30 * time.Second

	// HTTPExpectContinueTimeout - timeout for 100-continue response
	HTTPExpectContinueTimeout = 1 * time.Second

	// HTTPDialTimeout - timeout for establishing a connection
	HTTPDialTimeout = 30 * time.Second

	// HTTPDialKeepAlive - keep-alive period for the dialer
	HTTPDialKeepAlive = 30 * time.Second

	// HTTPRequestTimeout - overall per-request timeout for catalog calls
	HTTPRequestTimeout = 60 * time.Second
)

// API retry policy (applied by the retryablehttp wrapper)
const (
	APIRetryMax     = 4
	APIRetryWaitMin = 500 * time.Millisecond
	APIRetryWaitMax = 10 * time.Second
)
