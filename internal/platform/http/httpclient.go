// Package http は外部API呼び出し用のHTTPクライアント構成を提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// http.DefaultClientにはタイムアウトがないため、外部呼び出しには常にこの
// クライアントを使用すること。天気・株価・ニュースの各ソースはそれぞれの
// タイムアウトで独立にこの関数を呼びます（遅延のモデルは呼び出し単位）。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
