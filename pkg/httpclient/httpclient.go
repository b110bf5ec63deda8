// Package httpclient builds http clients for outbound api calls.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client configured for upstream api calls.
// http.DefaultClient has no timeout, always use this instead.
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
