package ipv4

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidMask    = errors.New("invalid mask")
	ErrInvalidCIDR    = errors.New("invalid cidr")
	ErrInvalidBinary  = errors.New("invalid binary")
	ErrOutOfRange     = errors.New("out of range")
	ErrInvalidRange   = errors.New("invalid range")
)
