package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest masks the values of query params named in reqarg.SensitiveKeys.
// The request ID set by RequestID, if any, is logged alongside.
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l logger.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			reqarg.Mask(q, reqarg.SensitiveKeys...)
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ip, ok := r.Context().Value(reqarg.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			var lc *logger.LogContext
			if id, ok := r.Context().Value(reqarg.RequestIDKey).(string); ok {
				lc = &logger.LogContext{RequestID: id}
			}

			l.Info(strings.Join(strs, " "), lc)
			h.ServeHTTP(w, r)
		})
	}
}
