package req

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

var _ Carrier = (*muxCarrier)(nil)

// muxCarrier is an httpCarrier for requests routed by gorilla/mux.
type muxCarrier struct {
	*httpCarrier
}

// FromMuxRequest adapts r, routed by a [*mux.Router], into a Carrier.
//
// Route variables are added to the query source as if they were query params,
// but are not written to r.URL.RawQuery.
func FromMuxRequest(r *http.Request) Carrier {
	return &muxCarrier{newHTTPCarrier(r, DefaultMaxMemory)}
}

func (c *muxCarrier) Query() url.Values {
	q := c.httpCarrier.Query()
	for key, val := range mux.Vars(c.r) {
		q.Add(key, val)
	}

	return q
}
