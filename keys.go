package reqarg

type Key string

const (
	// CarrierKey stashes the request carrier reqarg resolves handler arguments from.
	CarrierKey Key = "CarrierKey"

	// IpAddrKey stashes the originating IP address of an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "reqarg context key: " + string(k)
}
