package req_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg/http/req"
)

func TestCoercers(t *testing.T) {
	id := uuid.New()

	for _, tc := range []struct {
		name     string
		coerce   req.Coercer
		raw      string
		expected any
		wantErr  bool
	}{
		{"String", req.String, " as is ", " as is ", false},
		{"Int", req.Int, "123", 123, false},
		{"Int-Spaces", req.Int, " 7 ", 7, false},
		{"Int-Bad", req.Int, "abc", nil, true},
		{"Int64", req.Int64, "-9000000000", int64(-9000000000), false},
		{"Int64-Bad", req.Int64, "1.5", nil, true},
		{"Uint", req.Uint, "3", uint(3), false},
		{"Uint-Negative", req.Uint, "-3", nil, true},
		{"Float64", req.Float64, "2.5", 2.5, false},
		{"Float64-Bad", req.Float64, "two", nil, true},
		{"Bool", req.Bool, "true", true, false},
		{"Bool-On", req.Bool, "on", true, false},
		{"Bool-No", req.Bool, "NO", false, false},
		{"Bool-Bad", req.Bool, "maybe", nil, true},
		{"Duration", req.Duration, "1m30s", 90 * time.Second, false},
		{"Duration-Bad", req.Duration, "soon", nil, true},
		{"UUID", req.UUID, id.String(), id, false},
		{"UUID-Bad", req.UUID, "not-a-uuid", nil, true},
		{"Time", req.Time("2006-01-02"), "2022-04-28", time.Date(2022, 4, 28, 0, 0, 0, 0, time.UTC), false},
		{"Time-Bad", req.Time("2006-01-02"), "28/04/2022", nil, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := tc.coerce(tc.raw)

			// Assert
			if tc.wantErr {
				require.NotNil(t, err)
				require.Nil(t, actual)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}
