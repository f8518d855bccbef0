package req

import (
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (32MB).
// Larger uploads spill to temporary files.
const DefaultMaxMemory = 32 << 20

var _ Carrier = (*httpCarrier)(nil)

// httpCarrier adapts a *http.Request into a Carrier.
type httpCarrier struct {
	r         *http.Request
	maxMemory int64
	parsed    bool
}

// FromRequest adapts r into a Carrier.
//
// The body is parsed on first access to the form or files sources.
// A body that fails to parse leaves those sources empty.
func FromRequest(r *http.Request) Carrier {
	return newHTTPCarrier(r, DefaultMaxMemory)
}

// FromRequestWithMaxMemory is FromRequest with a custom limit
// on the memory used for multipart parsing.
func FromRequestWithMaxMemory(r *http.Request, maxMemory int64) Carrier {
	return newHTTPCarrier(r, maxMemory)
}

func newHTTPCarrier(r *http.Request, maxMemory int64) *httpCarrier {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}

	return &httpCarrier{r: r, maxMemory: maxMemory}
}

func (c *httpCarrier) Query() url.Values { return c.r.URL.Query() }

func (c *httpCarrier) Form() url.Values {
	c.parse()
	return c.r.PostForm
}

func (c *httpCarrier) Cookies() url.Values {
	vals := make(url.Values)
	for _, cookie := range c.r.Cookies() {
		vals.Add(cookie.Name, cookie.Value)
	}

	return vals
}

func (c *httpCarrier) Files() map[string][]*multipart.FileHeader {
	c.parse()
	if c.r.MultipartForm == nil {
		return nil
	}

	return c.r.MultipartForm.File
}

func (c *httpCarrier) Request() any { return c.r }

// parse reads the body once, as multipart data or as a URL-encoded form
// depending on the Content-Type.
func (c *httpCarrier) parse() {
	if c.parsed {
		return
	}
	c.parsed = true

	mediaType, _, _ := mime.ParseMediaType(c.r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := c.r.ParseMultipartForm(c.maxMemory); err != nil {
			c.r.PostForm = nil
			c.r.MultipartForm = nil
			return
		}

		for _, fhs := range c.r.MultipartForm.File {
			for _, fh := range fhs {
				fh.Filename = sanitizeFilename(fh.Filename)
			}
		}
		return
	}

	if err := c.r.ParseForm(); err != nil {
		c.r.PostForm = nil
	}
}

// sanitizeFilename removes path components and dangerous characters from uploaded filenames.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
