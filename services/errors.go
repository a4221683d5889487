package services

import "errors"

// Structured failures returned synchronously to callers. Controllers map
// these onto HTTP status codes; none of them ever leaves the registry in a
// partially updated state.
var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrDuplicate    = errors.New("customer with this phone already exists")
	ErrNotFound     = errors.New("not found")
	ErrInvalidDate  = errors.New("invalid date")
)
