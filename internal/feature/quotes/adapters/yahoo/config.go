// Package yahoo provides a client for the Yahoo Finance v8 chart API.
package yahoo

import "time"

// Config holds configuration for the Yahoo chart API client.
type Config struct {
	BaseURL string        // Base URL (e.g., "https://query1.finance.yahoo.com")
	Timeout time.Duration // HTTP request timeout
}

// DefaultTimeout is the request timeout for chart calls.
const DefaultTimeout = 10 * time.Second

// userAgent is sent with every request; Yahoo rejects the Go default agent.
const userAgent = "Mozilla/5.0"
