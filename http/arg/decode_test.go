package arg_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/arg"
	"github.com/xy-planning-network/reqarg/http/req"
)

type search struct {
	Term  string   `schema:"q"`
	Page  int      `schema:"page"`
	Sizes []string `schema:"size"`
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		query    url.Values
		form     url.Values
		src      reqarg.Source
		expected search
	}{
		{
			"Query",
			url.Values{"q": {"boots"}, "page": {"2"}, "size": {"9", "10"}},
			nil,
			reqarg.SourceQuery,
			search{Term: "boots", Page: 2, Sizes: []string{"9", "10"}},
		},
		{
			"Bad-Value-Zeroed",
			url.Values{"q": {"boots"}, "page": {"two"}},
			nil,
			reqarg.SourceQuery,
			search{Term: "boots"},
		},
		{
			"Form-Only",
			url.Values{"q": {"boots"}},
			url.Values{"page": {"3"}},
			reqarg.SourceForm,
			search{Page: 3},
		},
		{
			"Args",
			url.Values{"q": {"boots"}},
			url.Values{"page": {"3"}},
			reqarg.SourceArgs,
			search{Term: "boots", Page: 3},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			a := req.NewAccessor(newFormCarrier(tc.query, tc.form))

			// Act
			actual, err := arg.Decode[search](tc.src)(a, "search")

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeNotStruct(t *testing.T) {
	// Arrange
	a := req.NewAccessor(newFormCarrier(url.Values{"q": {"boots"}}, nil))

	// Act
	_, err := arg.Decode[int](reqarg.SourceQuery)(a, "n")

	// Assert
	require.ErrorIs(t, err, reqarg.ErrBadConfig)
}
