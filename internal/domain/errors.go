package domain

import "errors"

// ErrInvalidMonth indicates a value that is not a YYYY-MM month
var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

var ErrRunNotFound = errors.New("run not found")
