package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrMalformedSpan     = errors.New("malformed span")
	ErrMissingDictionary = errors.New("missing dictionary")
)
