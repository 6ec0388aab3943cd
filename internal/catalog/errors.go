package catalog

import "errors"

var (
	// ErrNotFound indicates a requested record doesn't exist.
	ErrNotFound = errors.New("record not found")

	// ErrRejected indicates the backend refused a query for a record
	// that exists, e.g. episode listings for true podcast shows.
	ErrRejected = errors.New("query rejected by backend")
)
