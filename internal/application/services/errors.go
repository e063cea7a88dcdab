package services

import "errors"

// ErrValidation marks request values the service rejects after binding
var ErrValidation = errors.New("validation failed")
