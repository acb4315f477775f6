// Package yahoorss provides a client for the Yahoo Finance headline RSS feed.
package yahoorss

import "time"

// Config holds configuration for the headline feed client.
type Config struct {
	BaseURL string        // Base URL (e.g., "https://finance.yahoo.com")
	Timeout time.Duration // HTTP request timeout
}

// DefaultTimeout is the request timeout for feed calls.
const DefaultTimeout = 5 * time.Second

// userAgent is sent with every request; the feed rejects the Go default agent.
const userAgent = "Mozilla/5.0"
