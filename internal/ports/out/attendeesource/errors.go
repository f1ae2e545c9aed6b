package attendeesource

import "errors"

var (
	// ErrSourceNotFound indicates the external store (file, table) does not exist.
	ErrSourceNotFound = errors.New("attendee source not found")

	// ErrMalformedSource indicates the store exists but lacks the required columns.
	ErrMalformedSource = errors.New("attendee source malformed")
)
