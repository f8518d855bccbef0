package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg/http/middleware"
)

func TestVisitorsFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors(0, 0)

		// Act
		v1 := vs.Fetch("127.0.0.1")
		seen := v1.LastSeen
		time.Sleep(time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Same(t, v1.Limiter, v2.Limiter)
		require.True(t, seen.Before(v2.LastSeen))
		require.Equal(t, 1, vs.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors(0, 0)

		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				vs.Fetch("127.0.0.1")
			}()
		}
		wg.Wait()

		// Assert
		require.Equal(t, 1, vs.Len())
	})
}

func TestRateLimit(t *testing.T) {
	// Arrange
	h := middleware.RateLimit(middleware.NewVisitors(1, 2))(noopHandler())
	serve := func() int {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "1.1.1.1")
		h.ServeHTTP(w, r)

		return w.Code
	}

	// Act + Assert
	require.Equal(t, http.StatusOK, serve())
	require.Equal(t, http.StatusOK, serve())
	require.Equal(t, http.StatusTooManyRequests, serve())
}
