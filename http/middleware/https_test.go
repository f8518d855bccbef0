package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/middleware"
)

func TestForceHTTPS(t *testing.T) {
	// Arrange + Act
	actual := middleware.ForceHTTPS(reqarg.Development)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	for _, tc := range []struct {
		name     string
		proto    string
		expected int
	}{
		{"Forwarded-HTTPS", "https", http.StatusOK},
		{"Forwarded-HTTP", "http", http.StatusPermanentRedirect},
		{"No-Header", "", http.StatusPermanentRedirect},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "http://example.com/hello?name=John", nil)
			if tc.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tc.proto)
			}

			// Act
			middleware.ForceHTTPS(reqarg.Testing)(noopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
			if tc.expected == http.StatusPermanentRedirect {
				require.Equal(t, "https://example.com/hello?name=John", w.Header().Get("Location"))
			}
		})
	}
}
