package usage

import "errors"

var (
	ErrFailedToCountUsage = errors.New("failed to count resource usage")
	ErrCacheUnavailable   = errors.New("usage cache unavailable")
)
