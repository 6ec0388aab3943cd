package downloader

import "errors"

// ErrAllFailed is returned when every attempted episode failed. Single
// failures are logged and skipped, only a fully failed run is an
// error.
var ErrAllFailed = errors.New("all downloads failed")
