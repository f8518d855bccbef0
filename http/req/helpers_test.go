package req_test

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
)

type upload struct {
	field    string
	filename string
	content  string
}

// newMultipartBody encodes fields and uploads as multipart/form-data,
// returning the body and its Content-Type.
func newMultipartBody(t *testing.T, fields url.Values, uploads ...upload) (*bytes.Buffer, string) {
	t.Helper()

	b := new(bytes.Buffer)
	mw := multipart.NewWriter(b)
	for key, vals := range fields {
		for _, val := range vals {
			require.Nil(t, mw.WriteField(key, val))
		}
	}

	for _, u := range uploads {
		w, err := mw.CreateFormFile(u.field, u.filename)
		require.Nil(t, err)

		_, err = w.Write([]byte(u.content))
		require.Nil(t, err)
	}

	require.Nil(t, mw.Close())

	return b, mw.FormDataContentType()
}

// newFormRequest builds a POST request with query params and a URL-encoded body.
func newFormRequest(query, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/?"+query.Encode(), strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return r
}

// assertFile checks v is an uploaded file with the given name and content.
func assertFile(t *testing.T, v any, filename, content string) *multipart.FileHeader {
	t.Helper()

	fh, ok := v.(*multipart.FileHeader)
	require.True(t, ok)
	require.Equal(t, filename, fh.Filename)

	f, err := fh.Open()
	require.Nil(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.Nil(t, err)
	require.Equal(t, content, string(b))

	return fh
}
