package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/reqarg"
)

// UnknownIPAddr is reported when no public address can be found in a request's headers.
const UnknownIPAddr = "0.0.0.0"

// ipHeaders are checked in order for the originating address of a proxied request.
var ipHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// IANA defined IPv4 non-public ranges not covered by netip.Addr.IsPrivate.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress grabs the IP address in the *http.Request.Header
// and promotes it to *http.Request.Context under reqarg.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), reqarg.IpAddrKey, GetIPAddress(r.Header))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIPAddress parses the "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// of the client, skipping addresses from non-public ranges.
//
// Addresses are read right to left: the rightmost public address is the one
// right before the proxies fronting the application.
func GetIPAddress(hm http.Header) string {
	for _, h := range ipHeaders {
		addrs := strings.Split(hm.Get(h), ",")
		for i := len(addrs) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(addrs[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	return UnknownIPAddr
}

func isPublic(addr netip.Addr) bool {
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
