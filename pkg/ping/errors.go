package ping

import "errors"

var (
	ErrPingerStopped = errors.New("pinger is stopped")
	ErrNotIPv4       = errors.New("target did not resolve to an IPv4 address")
)
