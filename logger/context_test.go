package logger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	for _, tc := range []struct {
		name     string
		lc       logger.LogContext
		expected string
	}{
		{"Empty", logger.LogContext{}, `{}`},
		{"Error", logger.LogContext{Error: errors.New("test")}, `{"error":"test"}`},
		{
			"Lookup",
			logger.LogContext{Error: errors.New("bad int"), Param: "page", Source: reqarg.SourceQuery, Key: "p"},
			`{"error":"bad int","param":"page","source":"get","key":"p"}`,
		},
		{"Request-ID", logger.LogContext{RequestID: "abc"}, `{"request_id":"abc"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			b, err := tc.lc.MarshalText()

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, string(b))
			require.Equal(t, tc.expected, tc.lc.String())
		})
	}
}

func TestLogContextRequest(t *testing.T) {
	// Arrange
	form := url.Values{}
	form.Set("name", "Edmund Husserl")

	r := httptest.NewRequest(http.MethodPost, "https://example.com/test?some=param", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Act
	b, err := logger.LogContext{Request: r}.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"request":{"method":"POST","url":"https://example.com/test?some=param"}}`, string(b))

	// Arrange
	require.Nil(t, r.ParseForm())
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodPost,
			"url":    "https://example.com/test?some=param",
			"form": map[string]any{
				"name": []any{"Edmund Husserl"},
				"some": []any{"param"},
			},
		},
	}

	// Act
	b, err = logger.LogContext{Request: r}.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
}
