package client

import "errors"

var errCacheUnavailable = errors.New("local cache is unavailable")
