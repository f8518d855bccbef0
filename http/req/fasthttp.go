package req

import (
	"bytes"
	"mime/multipart"
	"net/url"

	"github.com/valyala/fasthttp"
)

var (
	_ Carrier = (*fastCarrier)(nil)

	multipartContentType = []byte("multipart/form-data")
)

// fastCarrier adapts a *fasthttp.RequestCtx into a Carrier.
type fastCarrier struct {
	rc     *fasthttp.RequestCtx
	mf     *multipart.Form
	parsed bool
}

// FromFastHTTP adapts rc into a Carrier.
//
// A multipart body is parsed on first access to the form or files sources.
// A body that fails to parse leaves those sources empty.
func FromFastHTTP(rc *fasthttp.RequestCtx) Carrier {
	return &fastCarrier{rc: rc}
}

func (c *fastCarrier) Query() url.Values {
	return argsToValues(c.rc.QueryArgs())
}

func (c *fastCarrier) Form() url.Values {
	if mf := c.multipart(); mf != nil {
		vals := make(url.Values, len(mf.Value))
		for key, vs := range mf.Value {
			vals[key] = append([]string(nil), vs...)
		}
		return vals
	}

	return argsToValues(c.rc.PostArgs())
}

func (c *fastCarrier) Cookies() url.Values {
	vals := make(url.Values)
	c.rc.Request.Header.VisitAllCookie(func(key, value []byte) {
		vals.Add(string(key), string(value))
	})

	return vals
}

func (c *fastCarrier) Files() map[string][]*multipart.FileHeader {
	mf := c.multipart()
	if mf == nil {
		return nil
	}

	for _, fhs := range mf.File {
		for _, fh := range fhs {
			fh.Filename = sanitizeFilename(fh.Filename)
		}
	}

	return mf.File
}

func (c *fastCarrier) Request() any { return c.rc }

func (c *fastCarrier) multipart() *multipart.Form {
	if c.parsed {
		return c.mf
	}
	c.parsed = true

	if !bytes.HasPrefix(c.rc.Request.Header.ContentType(), multipartContentType) {
		return nil
	}

	mf, err := c.rc.MultipartForm()
	if err != nil {
		return nil
	}
	c.mf = mf

	return c.mf
}

// argsToValues copies every key-value pair of args, keeping repeated keys.
func argsToValues(args *fasthttp.Args) url.Values {
	vals := make(url.Values, args.Len())
	args.VisitAll(func(key, value []byte) {
		vals.Add(string(key), string(value))
	})

	return vals
}
