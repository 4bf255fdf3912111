package ratelimiter

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc derives the client identity a request is counted against.
type KeyFunc func(r *http.Request) string

// ClientIPKeyFunc keys requests by the remote address. When trustProxy is
// set the first X-Forwarded-For hop, then X-Real-IP, take precedence.
func ClientIPKeyFunc(trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if trustProxy {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
			if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
				return ip
			}
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
}
