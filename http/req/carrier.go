package req

import (
	"context"
	"mime/multipart"
	"net/url"

	"github.com/xy-planning-network/reqarg"
)

// A Carrier exposes the addressable value sources of one incoming request.
// Each host framework gets its own implementation.
//
// Implementations may parse lazily and may return nil maps when a source is empty.
type Carrier interface {
	Query() url.Values
	Form() url.Values
	Cookies() url.Values
	Files() map[string][]*multipart.FileHeader

	// Request returns the framework's own request object.
	Request() any
}

// NewContext returns a copy of ctx carrying c.
func NewContext(ctx context.Context, c Carrier) context.Context {
	return context.WithValue(ctx, reqarg.CarrierKey, c)
}

// FromContext retrieves the Carrier stashed in ctx by NewContext.
func FromContext(ctx context.Context) (Carrier, bool) {
	c, ok := ctx.Value(reqarg.CarrierKey).(Carrier)
	return c, ok && c != nil
}
