package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/reqarg"
)

// ReportPanic recovers panics in the handlers it wraps and reports them to Sentry,
// responding 500 Internal Server Error.
//
// In reqarg.Development, panics are left to the server.
func ReportPanic(env reqarg.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{WaitForDelivery: true})
	return func(h http.Handler) http.Handler {
		return sh.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					w.WriteHeader(http.StatusInternalServerError)
					panic(rec)
				}
			}()

			h.ServeHTTP(w, r)
		}))
	}
}
