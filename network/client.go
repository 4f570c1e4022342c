// Package network provides the pre-configured HTTP clients used for resolver
// metadata requests and media file transfers.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared by the file streamer and the
// server-side download proxy. Media hosts keep connections open for long
// transfers, so the pool is sized generously and header timeouts stay loose.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
