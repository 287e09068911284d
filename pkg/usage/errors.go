package usage

import "errors"

var (
	ErrFailedToCountResource = errors.New("failed to count resource usage")
)
