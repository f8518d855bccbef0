package reqarg

import "errors"

var (
	ErrBadConfig   = errors.New("bad config")
	ErrMissingData = errors.New("missing data")
	ErrNoRequest   = errors.New("no request")
	ErrNotValid    = errors.New("invalid")
)
