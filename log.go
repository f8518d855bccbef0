package reqarg

import "net/url"

const LogMaskVal = "xxxxxx"

// SensitiveKeys are the request parameter keys whose values are masked before logging.
var SensitiveKeys = []string{"password", "token", "secret"}

// Mask replaces all values set for key in vals with a single LogMaskVal.
// Keys not present in vals are left alone.
func Mask(vals url.Values, keys ...string) {
	for _, key := range keys {
		if _, ok := vals[key]; ok {
			vals[key] = []string{LogMaskVal}
		}
	}
}
