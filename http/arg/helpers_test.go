package arg_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg/http/req"
)

// newFormCarrier adapts a POST request with query params and a URL-encoded body.
func newFormCarrier(query, form url.Values) req.Carrier {
	r := httptest.NewRequest(http.MethodPost, "/?"+query.Encode(), strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req.FromRequest(r)
}

// newUploadCarrier adapts a POST request uploading files, each keyed by field name to its filename and content.
func newUploadCarrier(t *testing.T, fields url.Values, files ...[3]string) req.Carrier {
	t.Helper()

	b := new(bytes.Buffer)
	mw := multipart.NewWriter(b)
	for key, vals := range fields {
		for _, val := range vals {
			require.Nil(t, mw.WriteField(key, val))
		}
	}

	for _, f := range files {
		w, err := mw.CreateFormFile(f[0], f[1])
		require.Nil(t, err)

		_, err = w.Write([]byte(f[2]))
		require.Nil(t, err)
	}
	require.Nil(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", b)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	return req.FromRequest(r)
}

// readFile checks fh is an upload named filename and returns its content.
func readFile(t *testing.T, fh *multipart.FileHeader, filename string) string {
	t.Helper()

	require.NotNil(t, fh)
	require.Equal(t, filename, fh.Filename)

	f, err := fh.Open()
	require.Nil(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.Nil(t, err)

	return string(b)
}
