package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/reqarg"
)

// RequestIDHeader is the response header the request ID is echoed in.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under reqarg.RequestIDKey
// and echoes it in the RequestIDHeader of the response.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), reqarg.RequestIDKey, id)))
		})
	}
}
