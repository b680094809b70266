package services

import "errors"

// ErrValidation is the generic validation failure shared by all services.
// Handlers report it as a 400 with the wrapped detail message.
var ErrValidation = errors.New("validation error")
