package media

import "errors"

var (
	// ErrUnknownCategory signals a field name with no mapped category.
	ErrUnknownCategory = errors.New("unknown upload category")
	// ErrNoFile signals an upload request without a file payload.
	ErrNoFile = errors.New("no file uploaded")
)
