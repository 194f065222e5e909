package fault

import "errors"

// Sentinel errors for the failure model.
var (
	// ErrMalformedID indicates a failure ID with a blank part.
	ErrMalformedID = errors.New("fault: malformed failure id")
)
