package index

import "errors"

// Sentinel errors returned by index operations. Callers match them with
// errors.Is; the wrapped message carries the offending document ID or
// parameter.
var (
	ErrDuplicateDocument = errors.New("document already indexed")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidParameter  = errors.New("invalid parameter")
)
