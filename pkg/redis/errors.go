package redis

import "errors"

var (
	ErrFailedToParseConnURL = errors.New("failed to parse redis connection url")
	ErrNotReady             = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL   = errors.New("empty redis connection url")
	ErrHealthcheckFailed    = errors.New("redis healthcheck failed")
)
