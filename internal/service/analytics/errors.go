package analytics

import "errors"

var (
	// ErrCacheMiss is returned by a cache when no snapshot is stored
	ErrCacheMiss = errors.New("analytics: cache miss")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("analytics: internal error")
)
