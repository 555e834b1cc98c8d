package utils

import (
	"net/http"
	"strings"
)

// RequesterIP resolves the client address from the proxy headers the host
// platform sets. Returns "unknown" when neither header is present.
func RequesterIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First hop is the original client.
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return "unknown"
}
