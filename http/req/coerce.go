package req

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// A Coercer converts the raw string value of a request parameter into another type.
// An error means the value could not be converted.
type Coercer func(raw string) (any, error)

var (
	_ Coercer = String
	_ Coercer = Int
	_ Coercer = Int64
	_ Coercer = Uint
	_ Coercer = Float64
	_ Coercer = Bool
	_ Coercer = Duration
	_ Coercer = UUID
)

// String returns raw unchanged.
func String(raw string) (any, error) { return raw, nil }

// Int converts raw into an int.
func Int(raw string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid int value %q", raw)
	}

	return n, nil
}

// Int64 converts raw into an int64.
func Int64(raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid int64 value %q", raw)
	}

	return n, nil
}

// Uint converts raw into a uint.
func Uint(raw string) (any, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid uint value %q", raw)
	}

	return uint(n), nil
}

// Float64 converts raw into a float64.
func Float64(raw string) (any, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float value %q", raw)
	}

	return n, nil
}

// Bool converts raw into a bool.
// Besides what [strconv.ParseBool] accepts, Bool understands on/off and yes/no.
func Bool(raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err == nil {
		return b, nil
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	default:
		return nil, fmt.Errorf("invalid bool value %q", raw)
	}
}

// Duration converts raw into a [time.Duration].
func Duration(raw string) (any, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid duration value %q", raw)
	}

	return d, nil
}

// UUID converts raw into a [uuid.UUID].
func UUID(raw string) (any, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid uuid value %q", raw)
	}

	return id, nil
}

// Time returns a Coercer converting raw into a [time.Time] using layout.
func Time(layout string) Coercer {
	return func(raw string) (any, error) {
		t, err := time.Parse(layout, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid time value %q for layout %q", raw, layout)
		}

		return t, nil
	}
}
