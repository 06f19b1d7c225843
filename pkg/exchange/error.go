package exchange

import "errors"

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrRejectedOrder = errors.New("order rejected")
	ErrNoStrategy    = errors.New("no matching strategy configured")
)
