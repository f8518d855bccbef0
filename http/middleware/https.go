package middleware

import (
	"net/http"

	"github.com/xy-planning-network/reqarg"
)

// ForceHTTPS permanently redirects HTTP requests to HTTPS unless env is reqarg.Development.
//
// The "X-Forwarded-Proto" header is checked to tell whether HTTPS was requested
// of a proxy fronting the application.
func ForceHTTPS(env reqarg.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				h.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
